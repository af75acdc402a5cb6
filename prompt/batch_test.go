package prompt

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/simonhull/firebird-suite/wren/reader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func plainOut(h *harness) string {
	return ansi.ReplaceAllString(h.stdout.String(), "")
}

func TestAskAll_InOrder(t *testing.T) {
	h := newHarness(lines("Ada", "8080"))

	answers, err := h.p.AskAll(context.Background(), []Question{
		{Text: "Name", Key: "name"},
		{Text: "Port", Key: "port"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "port"}, answers.Keys())
	assert.Equal(t, "Ada", answers.String("name"))
	assert.Equal(t, "8080", answers.String("port"))
	require.Len(t, h.r.calls, 2)
	assert.Equal(t, "Name: ", h.r.calls[0].Prompt)
	assert.Equal(t, "Port: ", h.r.calls[1].Prompt)
}

func TestAskAll_Depends(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		asked  bool
		wantDB any
	}{
		{"asked when x is yes", []string{"yes", "host"}, true, "host"},
		{"skipped when x is no", []string{"no"}, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(lines(tt.input...))

			answers, err := h.p.AskAll(context.Background(), []Question{
				{Text: "Use a database?", Key: "x"},
				{Text: "Database host", Key: "y", Options: []Option{
					Depends(DependsOn(func(a *Answers) bool { return a.String("x") == "yes" })),
				}},
			})
			require.NoError(t, err)
			assert.True(t, answers.Has("y"))
			v, _ := answers.Get("y")
			assert.Equal(t, tt.wantDB, v)
			if tt.asked {
				assert.Len(t, h.r.calls, 2)
			} else {
				assert.Len(t, h.r.calls, 1)
			}
		})
	}
}

func TestAskAll_FailureRecordedAndBatchContinues(t *testing.T) {
	h := newHarness(lines("", "next"))

	answers, err := h.p.AskAll(context.Background(), []Question{
		{Text: "First", Key: "a", Options: []Option{Required(), Attempts(1)}},
		{Text: "Second", Key: "b"},
	})
	require.Error(t, err)

	var be *BatchError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, []string{"a"}, be.Keys())
	require.ErrorIs(t, be.Get("a"), ErrAttemptsExhausted)
	assert.Equal(t, "1 question failed: a: Maximum attempts reached!", be.Error())

	assert.Equal(t, "", answers.String("a"))
	assert.Equal(t, "next", answers.String("b"))
}

func TestAskAll_CancelAbortsWithPartialAnswers(t *testing.T) {
	r := &scripted{steps: []step{{line: "x"}, {err: reader.ErrCanceled}}}
	h := newHarness(r)

	answers, err := h.p.AskAll(context.Background(), []Question{
		{Text: "A", Key: "a"},
		{Text: "B", Key: "b"},
		{Text: "C", Key: "c"},
	}, WithConfirm(ConfirmConfig{}))
	require.ErrorIs(t, err, ErrCanceled)
	assert.Equal(t, []string{"a"}, answers.Keys())
	assert.Len(t, r.calls, 2)
	assert.Empty(t, h.stdout.String(), "no confirmation after a cancel")
}

func TestAskAll_ConfirmDeclineRestarts(t *testing.T) {
	h := newHarness(lines("a1", "n", "a2", "y"))

	answers, err := h.p.AskAll(context.Background(), []Question{
		{Text: "Answer", Key: "a"},
	}, WithConfirm(ConfirmConfig{Before: "Review:", After: "--"}))
	require.NoError(t, err)
	assert.Equal(t, "a2", answers.String("a"))
	require.Len(t, h.r.calls, 4)
	assert.Equal(t, "Confirm your input (Y/n) (Y): ", h.r.calls[1].Prompt)

	out := plainOut(h)
	assert.Equal(t, "Review:\na: a1\n--\nReview:\na: a2\n--\n", out)
}

func TestAskAll_ConfirmAcceptsDefault(t *testing.T) {
	h := newHarness(lines("v", ""))

	answers, err := h.p.AskAll(context.Background(), []Question{
		{Text: "Value", Key: "v"},
	}, WithConfirm(ConfirmConfig{}))
	require.NoError(t, err)
	assert.Equal(t, "v", answers.String("v"))
	assert.Len(t, h.r.calls, 2)
}

func TestAskAll_ConfirmCustomDefault(t *testing.T) {
	h := newHarness(lines("v1", "", "v2", "yes"))

	answers, err := h.p.AskAll(context.Background(), []Question{
		{Text: "Value", Key: "v"},
	}, WithConfirm(ConfirmConfig{Message: "OK?", Default: "n"}))
	require.NoError(t, err)
	assert.Equal(t, "v2", answers.String("v"))
	assert.Equal(t, "OK? (n): ", h.r.calls[1].Prompt)
}

func TestAskAll_ConfirmationReadFailure(t *testing.T) {
	h := newHarness(lines("v"))

	_, err := h.p.AskAll(context.Background(), []Question{
		{Text: "Value", Key: "v"},
	}, WithConfirm(ConfirmConfig{}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfirmation))
	assert.Len(t, h.r.calls, 4)
}

func TestAskAll_ConfirmIgnoresQuestionBehavior(t *testing.T) {
	// Call-level Required and Validate apply to questions, not the confirmation
	h := newHarness(lines("123", "y"))

	_, err := h.p.AskAll(context.Background(), []Question{
		{Text: "Value", Key: "v"},
	}, Required(), Validate(MatchPattern(`^\d+$`)), WithConfirm(ConfirmConfig{}))
	require.NoError(t, err)
	assert.Len(t, h.r.calls, 2)
}

func TestAskAll_CallOptionsLayer(t *testing.T) {
	h := newHarness(lines("", "b"), WithPrefix("> "))

	answers, err := h.p.AskAll(context.Background(), []Question{
		{Text: "A", Key: "a"},
		{Text: "B", Key: "b", Options: []Option{Default("question")}},
	}, Required(), Default("call"), WithPrefix("? "))
	require.NoError(t, err)

	assert.Equal(t, "call", answers.String("a"))
	assert.Equal(t, "b", answers.String("b"))
	assert.Equal(t, "? A (call): ", h.r.calls[0].Prompt)
	assert.Equal(t, "? B (question): ", h.r.calls[1].Prompt)
}

func TestAskAll_Keys(t *testing.T) {
	h := newHarness(lines("1", "2", "3"))

	answers, err := h.p.AskAll(context.Background(), []Question{
		{Text: "Explicit", Key: "explicit", Options: []Option{Key("ignored")}},
		{Text: "Option", Options: []Option{Key("option")}},
		{Text: "Text"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"explicit", "option", "Text"}, answers.Keys())

	assert.Equal(t, "explicit", Question{Text: "T", Key: "explicit"}.ResolvedKey())
	assert.Equal(t, "option", Question{Text: "T", Options: []Option{Key("option")}}.ResolvedKey())
	assert.Equal(t, "T", Question{Text: "T"}.ResolvedKey())
}

func TestAskAll_CallLevelKeyIgnored(t *testing.T) {
	h := newHarness(lines("a", "b"), Key("instance"))

	answers, err := h.p.AskAll(context.Background(), []Question{
		{Text: "A"},
		{Text: "B"},
	}, Key("call"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, answers.Keys())
	assert.Equal(t, "a", answers.String("A"))
	assert.Equal(t, "b", answers.String("B"))
}

func TestAskAll_ConfirmEchoesWithCallLevelSilent(t *testing.T) {
	h := newHarness(lines("secret", "y"))

	_, err := h.p.AskAll(context.Background(), []Question{
		{Text: "Token", Key: "token"},
	}, Silent(), WithConfirm(ConfirmConfig{}))
	require.NoError(t, err)
	require.Len(t, h.r.calls, 2)
	assert.True(t, h.r.calls[0].Silent)
	assert.False(t, h.r.calls[1].Silent, "confirmation input is echoed")
}

func TestAskAll_InvalidBatch(t *testing.T) {
	h := newHarness(lines("unused"))

	_, err := h.p.AskAll(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrInvalidQuestion))

	_, err = h.p.AskAll(context.Background(), []Question{{Text: "ok"}, {Text: " "}})
	assert.True(t, errors.Is(err, ErrInvalidQuestion))
	assert.Contains(t, err.Error(), "question 2")

	assert.Empty(t, h.r.calls)
}

func TestAnswers_Order(t *testing.T) {
	a := NewAnswers()
	a.Set("name", "Ada")
	a.Set("port", 8080)
	a.Set("ok", true)
	a.Set("skip", nil)
	a.Set("name", "Grace")

	assert.Equal(t, []string{"name", "port", "ok", "skip"}, a.Keys())
	assert.Equal(t, "Grace", a.String("name"))
	assert.Equal(t, "8080", a.String("port"))
	assert.True(t, a.Bool("ok"))
	assert.False(t, a.Bool("name"))
	assert.Equal(t, "", a.String("skip"))
	assert.True(t, a.Has("skip"))
	assert.False(t, a.Has("missing"))
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, map[string]any{"name": "Grace", "port": 8080, "ok": true, "skip": nil}, a.Map())
}

func TestAnswers_Marshal(t *testing.T) {
	a := NewAnswers()
	a.Set("name", "Ada")
	a.Set("port", 8080)
	a.Set("ok", true)
	a.Set("skip", nil)

	y, err := yaml.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, "name: Ada\nport: 8080\nok: true\nskip: null\n", string(y))

	j, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Ada","port":8080,"ok":true,"skip":null}`, string(j))
}

func TestAnswers_NilSafe(t *testing.T) {
	var a *Answers
	assert.False(t, a.Has("x"))
	assert.Equal(t, 0, a.Len())
	assert.Nil(t, a.Keys())
}

func TestVariants(t *testing.T) {
	assert.True(t, Validator{}.Check("anything"))
	assert.True(t, ValidateFunc(nil).Check(""))
	assert.True(t, MatchPattern(`^\d+$`).Check(42))
	assert.False(t, MatchPattern(`^\d+$`).Check("x"))

	assert.True(t, Condition{}.Holds(nil))
	assert.False(t, When(false).Holds(nil))
	assert.True(t, DependsOn(func(a *Answers) bool { return a.Len() == 0 }).Holds(nil))
}

func TestRender(t *testing.T) {
	plain := []Option{WithPlainThemes()}

	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{"bare", nil, "Name: "},
		{"prefix", []Option{WithPrefix("? ")}, "? Name: "},
		{"default hint", []Option{Default("ada")}, "Name (ada): "},
		{"custom framing", []Option{Default("ada"), WithDefaultPrefix(" ["), WithDefaultSuffix("]"), WithSuffix(" > ")}, "Name [ada] > "},
		{"no suffix", []Option{WithSuffix("")}, "Name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render("Name", resolve(plain, tt.opts))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_Themes(t *testing.T) {
	upper := func(s string) string { return strings.ToUpper(s) }
	cfg := resolve([]Option{WithPlainThemes(), WithTextTheme(upper), WithDefaultTheme(nil), Default("x")})

	assert.Equal(t, "NAME (x): ", Render("Name", cfg))
}
