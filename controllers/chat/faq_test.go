package chatController

import (
	"testing"

	"lms/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func faq(id uint, answer string, keywords string) models.FAQ {
	return models.FAQ{
		Model:    gorm.Model{ID: id},
		Question: "q",
		Answer:   answer,
		Keywords: datatypes.JSON([]byte(keywords)),
	}
}

func TestMatchFAQ_PicksHighestKeywordOverlap(t *testing.T) {
	faqs := []models.FAQ{
		faq(1, "You can enroll from the course page.", `["enroll","enrollment","join"]`),
		faq(2, "Certificates unlock at 100% course completion.", `["certificate","complete","completion","progress"]`),
	}

	answer, ok := MatchFAQ("How do I get a certificate after completion?", faqs)
	if !ok {
		t.Fatalf("expected a match")
	}
	if answer != faqs[1].Answer {
		t.Fatalf("expected certificate answer, got %q", answer)
	}
}

func TestMatchFAQ_IsCaseInsensitiveAndIgnoresPunctuation(t *testing.T) {
	faqs := []models.FAQ{
		faq(1, "You can enroll from the course page.", `["enroll"]`),
	}

	answer, ok := MatchFAQ("ENROLL?!", faqs)
	if !ok || answer != faqs[0].Answer {
		t.Fatalf("expected match regardless of case/punctuation, got ok=%v answer=%q", ok, answer)
	}
}

func TestMatchFAQ_TieGoesToEarlierRow(t *testing.T) {
	faqs := []models.FAQ{
		faq(1, "first", `["refund"]`),
		faq(2, "second", `["refund"]`),
	}

	answer, ok := MatchFAQ("refund please", faqs)
	if !ok || answer != "first" {
		t.Fatalf("expected deterministic tie-break to first row, got ok=%v answer=%q", ok, answer)
	}
}

func TestMatchFAQ_NoOverlapReturnsFalse(t *testing.T) {
	faqs := []models.FAQ{
		faq(1, "You can enroll from the course page.", `["enroll"]`),
	}

	if _, ok := MatchFAQ("what is the meaning of life", faqs); ok {
		t.Fatalf("expected no match")
	}
}

func TestMatchFAQ_SkipsMalformedKeywordRows(t *testing.T) {
	faqs := []models.FAQ{
		faq(1, "broken", `not-json`),
		faq(2, "working", `["progress"]`),
	}

	answer, ok := MatchFAQ("where is my progress", faqs)
	if !ok || answer != "working" {
		t.Fatalf("expected malformed row skipped, got ok=%v answer=%q", ok, answer)
	}
}

func TestMatchFAQ_EmptyQuestion(t *testing.T) {
	faqs := []models.FAQ{
		faq(1, "answer", `["enroll"]`),
	}

	if _, ok := MatchFAQ("   ", faqs); ok {
		t.Fatalf("expected no match for empty question")
	}
}
