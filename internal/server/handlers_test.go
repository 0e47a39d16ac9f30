package server

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/captvty-nav/internal/model"
)

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", res.Content[0])
	}
	return tc.Text
}

func TestHandlers_Channels(t *testing.T) {
	sess, _ := newSampleSession(t, model.ModeDirect, 0)
	s := New(sess)
	res, err := s.handleChannels(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	if text := resultText(t, res); !strings.Contains(text, "Chérie 25") {
		t.Errorf("channel list missing from output:\n%s", text)
	}
}

func TestHandlers_SelectChannelMissingArgument(t *testing.T) {
	sess, _ := newSampleSession(t, model.ModeDirect, 0)
	s := New(sess)
	res, err := s.handleSelectChannel(context.Background(), callRequest(map[string]interface{}{}))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Error("expected tool error without channel")
	}
}

func TestHandlers_SelectChannelFailureCarriesTranscript(t *testing.T) {
	sess, _ := newSampleSession(t, model.ModeOther, 0)
	s := New(sess)
	res, _ := s.handleSelectChannel(context.Background(), callRequest(map[string]interface{}{"channel": "TF1"}))
	if !res.IsError {
		t.Fatal("expected tool error without an active mode")
	}
	text := resultText(t, res)
	if !strings.Contains(text, "ok: false") || !strings.Contains(text, "spoken:") {
		t.Errorf("error result should carry the transcript:\n%s", text)
	}
}

func TestHandlers_Gesture(t *testing.T) {
	sess, _ := newSampleSession(t, model.ModeDirect, 0)
	s := New(sess)
	res, _ := s.handleGesture(context.Background(), callRequest(map[string]interface{}{"gesture": "ctrl+r"}))
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	if text := resultText(t, res); !strings.Contains(text, "RATTRAPAGE") {
		t.Errorf("expected press input in output:\n%s", text)
	}
}

func TestHandlers_ParseProgram(t *testing.T) {
	sess, _ := newSampleSession(t, model.ModeDirect, 0)
	s := New(sess)
	res, _ := s.handleParseProgram(context.Background(), callRequest(map[string]interface{}{
		"text": "Foo; Chaîne: ARTE; Diffusée ou publiée le: 1 jan",
	}))
	text := resultText(t, res)
	if !strings.Contains(text, "channel: ARTE") || !strings.Contains(text, "published_at: 1 jan") {
		t.Errorf("unexpected output:\n%s", text)
	}
}
