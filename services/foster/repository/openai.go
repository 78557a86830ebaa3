package repository

import (
	"context"
	"fmt"

	"foster/domain"

	openai "github.com/sashabaranov/go-openai"
)

const transcriptBioPrompt = "Generate a 3-4 paragraph biography based on the following information. Maintain an upbeat and engaging tone. Do not fabricate details—focus on presenting the information in a positive light, even if some aspects are not inherently optimistic. Ensure clarity, coherence, and a natural flow in the writing. Ignore any lines preceded by 'AGENT:'.\n\nHere is the provided information:\n\n"

const questionnaireSystemPrompt = "You are creating pet adoption biographies. Your task is to write EXCLUSIVELY about the pet - their personality, needs, and behaviors. NEVER mention humans, caregivers, owners, or foster families in any way. The biography should focus 100% on the animal, as if no humans are involved in their life."

type openAIRepository struct {
	client *openai.Client
	model  string
}

func NewOpenAIRepository(client *openai.Client, model string) domain.BiographyRepo {
	return &openAIRepository{
		client: client,
		model:  model,
	}
}

func (or *openAIRepository) FromTranscript(ctx context.Context, transcript string) (string, error) {
	return or.complete(ctx, []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleUser,
			Content: transcriptBioPrompt + transcript,
		},
	})
}

func (or *openAIRepository) FromQuestionnaire(ctx context.Context, req *domain.PetBioRequest, transcript string) (string, error) {
	return or.complete(ctx, []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: questionnaireSystemPrompt,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: questionnairePrompt(req, transcript),
		},
	})
}

func (or *openAIRepository) complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := or.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    or.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %v", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

func questionnairePrompt(req *domain.PetBioRequest, transcript string) string {
	breed := req.Breed
	if breed == "" {
		breed = "Not specified"
	}
	spayedNeutered := req.SpayedNeutered
	if spayedNeutered == "" {
		spayedNeutered = "Yes"
	}

	return fmt.Sprintf(`
	Generate a natural, conversational pet biography for %s that reads like someone describing their pet to a friend. Keep it warm and engaging while still being informative.

	Length:
	- Keep the bio between 100-150 words
	- Write in a natural, flowing style

	Tone:
	- Use a warm, friendly tone while staying professional
	- Write as if you're describing the pet to a friend
	- Keep descriptions simple and relatable
	- Avoid overly formal or technical language

	Content Structure:
	- Include these key details in a natural way:
	  * Size and age
	  * Breed: %s
	  * Energy level
	  * Health/vaccination status: %s
	  * How they get along with other pets or children
	  * Their training status:
	    - Leash Trained: %s
	    - House Trained: %s
	    - Spayed/Neutered: %s
	  * Recent medical care or spay/neuter status

	Writing Style:
	- Use natural, everyday language
	- Avoid excessive adjectives or flowery descriptions
	- Keep sentences clear and straightforward
	- Include specific examples of behavior rather than general traits
	- Help potential adopters picture life with the pet through relatable scenarios

	Additional Requirements:
	1. WRITE ONLY ABOUT THE PET. The biography must focus 100%% on the pet and their needs/personality.
	2. DO NOT MENTION ANY HUMANS by name or reference.
	3. DO NOT REFER TO "CURRENT OWNERS", "CURRENT FAMILY", "FOSTER PARENTS" or any similar terms.
	4. Write in third person, focusing exclusively on %s.
	5. Include these additional details: %s
	6. CRITICAL: ANY PERSONAL NAMES in the transcript should be completely ignored.

	Adoption Information:
	- End with a friendly, encouraging call to action
	- Example: "If you're looking for a great companion, %s would love to meet you! All adoptions include vaccinations, microchip, and spay/neuter."

	Remember: The biography is for potential adopters to learn about the pet in a natural, engaging way.

	Interview notes:

	%s
	`, req.PetName, breed, yesNo(req.Vaccinated), yesNo(req.LeashTrained), yesNo(req.HouseTrained), spayedNeutered, req.PetName, req.OtherNotes, req.PetName, transcript)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
