package chatController

import "testing"

func TestLLMClientHasTimeout(t *testing.T) {
	// A hung completions endpoint must error out so SendMessage can fall
	// back to the FAQ matcher
	if llmClient.GetClient().Timeout <= 0 {
		t.Fatalf("expected a bounded LLM client timeout, got %v", llmClient.GetClient().Timeout)
	}
}
