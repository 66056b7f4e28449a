package session

import "testing"

func TestMessage_Text(t *testing.T) {
	plain := UserText("hello")
	if got := plain.Text(); got != "hello" {
		t.Errorf("Text() = %q, want %q", got, "hello")
	}

	multi := UserMultimodal("describe this", ImagePart{MediaType: "image/jpeg", Data: "aGk="})
	if got := multi.Text(); got != "describe this" {
		t.Errorf("Text() = %q, want %q", got, "describe this")
	}
}

func TestMessage_HasImage(t *testing.T) {
	if UserText("no image").HasImage() {
		t.Error("plain text message should not report an image")
	}
	multi := UserMultimodal("look", ImagePart{MediaType: "image/png", Data: "aGk="})
	if !multi.HasImage() {
		t.Error("multimodal message should report its image")
	}
}

func TestImagePart_DataURL(t *testing.T) {
	p := ImagePart{MediaType: "image/jpeg", Data: "aGVsbG8="}
	want := "data:image/jpeg;base64,aGVsbG8="
	if got := p.DataURL(); got != want {
		t.Errorf("DataURL() = %q, want %q", got, want)
	}
}

func TestLastUserMessage(t *testing.T) {
	msgs := []Message{
		UserText("first"),
		{Role: RoleAssistant, Content: "reply"},
		UserText("second"),
		{Role: RoleAssistant, Content: "reply again"},
	}
	got, ok := LastUserMessage(msgs)
	if !ok || got.Content != "second" {
		t.Errorf("LastUserMessage = (%q, %v), want (%q, true)", got.Content, ok, "second")
	}

	if _, ok := LastUserMessage(nil); ok {
		t.Error("empty conversation should report no user message")
	}
}

func TestHasToolCalls(t *testing.T) {
	assistant := Message{Role: RoleAssistant, ToolCalls: []ToolCall{{ID: "1", Name: "tavily_search"}}}
	if !assistant.HasToolCalls() {
		t.Error("assistant message with tool calls should report them")
	}
	user := Message{Role: RoleUser, ToolCalls: []ToolCall{{ID: "1"}}}
	if user.HasToolCalls() {
		t.Error("only assistant messages carry tool call requests")
	}
}
