package generate

import (
	"testing"

	"prism/internal/models"

	"google.golang.org/genai"
)

func groundedResponse(chunks ...*genai.GroundingChunk) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{GroundingMetadata: &genai.GroundingMetadata{GroundingChunks: chunks}},
		},
	}
}

func TestExtractCitations(t *testing.T) {
	resp := groundedResponse(
		&genai.GroundingChunk{Web: &genai.GroundingChunkWeb{Title: "Wikipedia", URI: "https://en.wikipedia.org/wiki/Paris"}},
		&genai.GroundingChunk{Web: &genai.GroundingChunkWeb{Title: "", URI: "https://example.com"}},
		&genai.GroundingChunk{Web: &genai.GroundingChunkWeb{Title: "No link", URI: ""}},
		nil,
		&genai.GroundingChunk{},
	)

	got := extractCitations(resp)
	want := []models.Citation{
		{Title: "Wikipedia", URI: "https://en.wikipedia.org/wiki/Paris"},
		{Title: "Source", URI: "https://example.com"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d citations, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("citation %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestExtractCitationsNoGrounding(t *testing.T) {
	if got := extractCitations(nil); got != nil {
		t.Errorf("nil response: got %+v", got)
	}
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}
	if got := extractCitations(resp); got != nil {
		t.Errorf("no metadata: got %+v", got)
	}
}

func TestFilterCitationsNeverKeepsSentinel(t *testing.T) {
	in := []models.Citation{
		{Title: "A", URI: citationURISentinel},
		{Title: "B", URI: "https://b.example"},
		{Title: "C", URI: ""},
		{Title: "D", URI: "https://d.example"},
	}
	got := filterCitations(in)
	if len(got) != 2 || got[0].Title != "B" || got[1].Title != "D" {
		t.Fatalf("got %+v", got)
	}
	for _, c := range got {
		if c.URI == citationURISentinel {
			t.Errorf("sentinel leaked: %+v", c)
		}
	}
}

func TestFirstInlineData(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "Here is your image:"},
					{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{1, 2, 3}}},
					{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: []byte{4}}},
				}},
			},
		},
	}

	blob := firstInlineData(resp)
	if blob == nil {
		t.Fatal("expected a blob")
	}
	if blob.MIMEType != "image/png" {
		t.Errorf("scan must stop at the first inline part, got %q", blob.MIMEType)
	}
}

func TestFirstInlineDataTextOnly(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "sorry, no image"}}}},
		},
	}
	if blob := firstInlineData(resp); blob != nil {
		t.Fatalf("got %+v, want nil", blob)
	}
}
