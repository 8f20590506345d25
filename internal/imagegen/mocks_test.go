package imagegen

import (
	"context"

	"google.golang.org/genai"
)

// mockModels records the last request and plays back canned responses.
type mockModels struct {
	lastModel    string
	lastContents []*genai.Content
	lastConfig   *genai.GenerateContentConfig

	lastImagePrompt string
	lastImageConfig *genai.GenerateImagesConfig

	contentResp *genai.GenerateContentResponse
	contentErr  error

	imagesResp *genai.GenerateImagesResponse
	imagesErr  error
}

func (m *mockModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.lastModel = model
	m.lastContents = contents
	m.lastConfig = config
	return m.contentResp, m.contentErr
}

func (m *mockModels) GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	m.lastModel = model
	m.lastImagePrompt = prompt
	m.lastImageConfig = config
	return m.imagesResp, m.imagesErr
}

func imageReply(mime string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: mime, Data: data}}},
			},
		}},
	}
}

func textReply(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: text}},
			},
		}},
	}
}

func newTestGemini(m *mockModels) *Gemini {
	return &Gemini{
		models:        m,
		editModel:     DefaultEditModel,
		generateModel: DefaultGenerateModel,
	}
}
