// resume/parser_test.go
package resume_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arjunvx/skillfolio/resume"
)

// mockLLMClient stands in for the hosted model so tests control exactly what
// the "API" returns, including malformed output and transport failures.
type mockLLMClient struct {
	mockResponse string
	mockErr      error
	lastPrompt   string
}

func (m *mockLLMClient) Complete(ctx context.Context, prompt string) (string, error) {
	m.lastPrompt = prompt
	return m.mockResponse, m.mockErr
}

////////////////////////////////////////////////////////////////////////
// Tests for ExtractJSON
////////////////////////////////////////////////////////////////////////

func TestExtractJSON(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare json",
			raw:  `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "surrounding whitespace",
			raw:  "  \n {\"a\":1} \n ",
			want: `{"a":1}`,
		},
		{
			name: "fenced without language tag",
			raw:  "```\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "fenced with language tag",
			raw:  "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "prose before and after",
			raw:  "Sure! Here is the data you asked for: {\"a\":1} Hope this helps!",
			want: `{"a":1}`,
		},
		{
			name: "prose around fenced block",
			raw:  "Here you go:\n```json\n{\"a\": {\"b\": 2}}\n```\nLet me know if you need more.",
			want: `{"a": {"b": 2}}`,
		},
		{
			name: "line comments stripped",
			raw:  "{\"a\":1, // the value\n\"b\":2}",
			want: "{\"a\":1, \n\"b\":2}",
		},
		{
			name: "no braces at all",
			raw:  "I could not find anything useful.",
			want: "I could not find anything useful.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, resume.ExtractJSON(tc.raw))
		})
	}
}

// A fenced response and the equivalent bare response must parse to the same value.
func TestExtractJSONFenceEquivalence(t *testing.T) {
	fenced := resume.ExtractJSON("```json\n{\"a\":1}\n```")
	bare := resume.ExtractJSON(`{"a":1}`)

	var fromFenced, fromBare map[string]any
	require.NoError(t, json.Unmarshal([]byte(fenced), &fromFenced))
	require.NoError(t, json.Unmarshal([]byte(bare), &fromBare))
	require.Equal(t, fromBare, fromFenced)
}

////////////////////////////////////////////////////////////////////////
// Tests for LLMParser.Parse
////////////////////////////////////////////////////////////////////////

func TestLLMParserParse(t *testing.T) {
	// The model response for the canonical end-to-end scenario: one role at
	// Acme started June 2023 and still ongoing, with one Advanced Go skill.
	acmeResponse := `Here is the extracted data:
` + "```json" + `
{
  "skills": [{"name": "Go", "proficiency": "Advanced", "source": "resume"}],
  "education": [],
  "experiences": [{
    "title": "Software Engineer",
    "company": "Acme",
    "start_date": "June 2023",
    "end_date": null,
    "description": "Backend work in Go.",
    "skills": [{"name": "Go", "proficiency": "Advanced"}]
  }]
}
` + "```"

	testCases := []struct {
		name         string
		mockResponse string
		mockErr      error
		wantErr      error
		check        func(t *testing.T, parsed *resume.ParsedResume)
	}{
		{
			name:         "happy path with fenced output and loose dates",
			mockResponse: acmeResponse,
			check: func(t *testing.T, parsed *resume.ParsedResume) {
				require.Len(t, parsed.Experiences, 1)
				exp := parsed.Experiences[0]
				require.Equal(t, "Software Engineer", exp.Title)
				require.Equal(t, "Acme", exp.Company)
				require.NotNil(t, exp.StartDate)
				require.Equal(t, "2023-06-01", *exp.StartDate)
				require.Nil(t, exp.EndDate)

				require.Len(t, exp.Skills, 1)
				require.Equal(t, "Go", exp.Skills[0].Name)
				require.NotNil(t, exp.Skills[0].Proficiency)
				require.Equal(t, "Advanced", *exp.Skills[0].Proficiency)
			},
		},
		{
			name: "invented proficiency level is nulled",
			mockResponse: `{"skills": [{"name": "Go", "proficiency": "Wizard", "source": "resume"}],
				"education": [], "experiences": []}`,
			check: func(t *testing.T, parsed *resume.ParsedResume) {
				require.Len(t, parsed.Skills, 1)
				require.Nil(t, parsed.Skills[0].Proficiency)
			},
		},
		{
			name:         "model call fails",
			mockErr:      errors.New("rate limited"),
			wantErr:      errors.New("rate limited"),
		},
		{
			name:         "unparsable output",
			mockResponse: "no structured data here, sorry",
			wantErr:      errors.New("failed to parse model output"),
		},
		{
			name:         "wrong shape is a schema mismatch",
			mockResponse: `{"skills": "Go, Docker", "education": [], "experiences": []}`,
			wantErr:      resume.ErrSchemaMismatch,
		},
		{
			name:         "experience without company is a schema mismatch",
			mockResponse: `{"skills": [], "education": [], "experiences": [{"title": "Engineer", "company": ""}]}`,
			wantErr:      resume.ErrSchemaMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockClient := &mockLLMClient{mockResponse: tc.mockResponse, mockErr: tc.mockErr}
			p := resume.NewLLMParser(mockClient)

			parsed, err := p.Parse(context.Background(), "dummy resume text")

			if tc.wantErr != nil {
				require.Error(t, err)
				require.ErrorContains(t, err, tc.wantErr.Error())
				require.Nil(t, parsed)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, parsed)
			// The prompt must embed the extracted text verbatim.
			require.Contains(t, mockClient.lastPrompt, "dummy resume text")
			tc.check(t, parsed)
		})
	}
}
