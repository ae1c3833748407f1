package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"rawdati/internal/config"
	"rawdati/internal/model"
)

// AnalysisService requests a narrative analysis of survey aggregates
// from the Gemini API. Strictly best-effort: when the API is not
// configured a canned analysis is returned, and any failure yields nil
// rather than an error so report generation never blocks on it.
type AnalysisService struct {
	config *config.AIConfig
	client *http.Client
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService() *AnalysisService {
	cfg := config.DefaultAIConfig()
	return &AnalysisService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// FetchAnalysis generates narrative commentary for the given aggregates.
// Skipped entirely when there are no results.
func (s *AnalysisService) FetchAnalysis(ctx context.Context, survey *model.Survey, results []model.SurveyResult) (*model.NarrativeAnalysis, error) {
	if len(results) == 0 {
		return nil, nil
	}
	if !s.config.IsEnabled() {
		return s.mockAnalysis(results), nil
	}

	prompt := s.buildAnalysisPrompt(survey, results)
	response, err := s.callGemini(ctx, prompt)
	if err != nil {
		log.Printf("[Analysis] request failed, continuing without analysis: %v", err)
		return nil, nil
	}

	var analysis model.NarrativeAnalysis
	if err := json.Unmarshal([]byte(stripJSONFences(response)), &analysis); err != nil {
		log.Printf("[Analysis] unparseable response, continuing without analysis: %v", err)
		return nil, nil
	}
	return &analysis, nil
}

// callGemini makes a request to the Gemini API
func (s *AnalysisService) callGemini(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.ModelEndpoint(), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func (s *AnalysisService) buildAnalysisPrompt(survey *model.Survey, results []model.SurveyResult) string {
	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("- %q (%s): %d responses", r.QuestionText, r.QuestionType, r.TotalResponses))
		switch r.QuestionType {
		case model.QuestionTypeYesNo:
			sb.WriteString(fmt.Sprintf(", yes %d / no %d (%.1f%% yes)", r.YesCount, r.NoCount, r.YesPercentage))
		case model.QuestionTypeSingleChoice, model.QuestionTypeMultipleChoice:
			for opt, count := range r.OptionCounts {
				sb.WriteString(fmt.Sprintf(", %q=%d", opt, count))
			}
		case model.QuestionTypeRating:
			sb.WriteString(fmt.Sprintf(", average rating %.2f/5", r.AverageRating))
		}
		sb.WriteString("\n")
	}

	return fmt.Sprintf(`You are analyzing parent and staff survey results for a nursery school.
Return ONLY valid JSON matching this schema:
{
  "summary": "two to three sentence overview",
  "insights": ["notable finding", "..."],
  "recommendations": ["concrete action", "..."],
  "strengths": ["what is going well", "..."],
  "improvements": ["what needs attention", "..."]
}

Survey: %s
%s
Aggregated results:
%s
Keep every list to at most five short items. Write for the nursery's administration.`,
		survey.Title, survey.Description, sb.String())
}

// mockAnalysis stands in when no API key is configured so the rest of
// the pipeline stays exercisable in development.
func (s *AnalysisService) mockAnalysis(results []model.SurveyResult) *model.NarrativeAnalysis {
	total := 0
	for _, r := range results {
		total += r.TotalResponses
	}
	return &model.NarrativeAnalysis{
		Summary: fmt.Sprintf("The survey collected %d responses across %d questions.", total, len(results)),
		Insights: []string{
			"Configure GEMINI_API_KEY to replace this placeholder analysis.",
		},
	}
}

// stripJSONFences removes markdown code fences some models wrap JSON in.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
