package service

// prompts.go holds the instruction text sent to the text-generation model.
// Keeping it in one place makes the wording easy to tweak without touching
// the assist flow.

import (
	"encoding/json"
	"fmt"

	"hospital-assist-service/internal/models"
)

// phoneLookupPromptFormat instructs the model to answer with a bare phone
// number: the fixed instruction, the literal user request, a one-shot example
// of the expected output, and the full hospital aggregate as JSON context.
const phoneLookupPromptFormat = "Get me the phone number of the doctor that the user is requesting. Here is the user's request: %s. " +
	"Return ONLY the phone number. NO EXPLANATION.\n\n" +
	"Here is an example of a correct response: 123-456-7890.\n\n" +
	"Here is the data: %s."

// BuildPhoneLookupPrompt renders the prompt for one lookup. The same query
// against unchanged hospital data always yields the same prompt.
func BuildPhoneLookupPrompt(userQuery string, detail *models.HospitalDetail) (string, error) {
	data, err := json.Marshal(detail)
	if err != nil {
		return "", fmt.Errorf("serialize hospital data: %w", err)
	}
	return fmt.Sprintf(phoneLookupPromptFormat, userQuery, data), nil
}
