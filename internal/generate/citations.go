package generate

import (
	"prism/internal/models"

	"google.golang.org/genai"
)

const (
	citationTitleFallback = "Source"

	// citationURISentinel marks grounding chunks that arrived without a
	// link. Filtering runs on the sentinel, so callers never see it.
	citationURISentinel = "#"
)

// extractCitations pulls web grounding sources out of a text response.
func extractCitations(resp *genai.GenerateContentResponse) []models.Citation {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return nil
	}

	var citations []models.Citation
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = citationTitleFallback
		}
		uri := chunk.Web.URI
		if uri == "" {
			uri = citationURISentinel
		}
		citations = append(citations, models.Citation{Title: title, URI: uri})
	}
	return filterCitations(citations)
}

// filterCitations drops entries without a real link, preserving order.
func filterCitations(citations []models.Citation) []models.Citation {
	var kept []models.Citation
	for _, c := range citations {
		if c.URI == "" || c.URI == citationURISentinel {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// firstInlineData returns the first response part carrying an inline
// binary payload, or nil when the model produced none.
func firstInlineData(resp *genai.GenerateContentResponse) *genai.Blob {
	if resp == nil {
		return nil
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData
			}
		}
	}
	return nil
}
