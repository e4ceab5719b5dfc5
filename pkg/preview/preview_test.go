package preview

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formsite/pkg/question"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	multiIdx     [][]int
	textAreas    []string
	infoMessages []string
	inputCfgs    []InputConfig
	selectCfgs   []SelectConfig
	inputPos     int
	selectPos    int
	multiPos     int
	textPos      int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	s.inputCfgs = append(s.inputCfgs, cfg)
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	s.selectCfgs = append(s.selectCfgs, cfg)
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	s.selectCfgs = append(s.selectCfgs, cfg)
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func catalog() []question.Question {
	return []question.Question{
		{Label: "Name", Number: 1, Type: question.TypeText, Required: true, Name: "entry.1", InputType: "email"},
		{Label: "More", Number: 2, Type: question.TypeParagraphText, Name: "entry.2"},
		{
			Label:  "Heard from",
			Number: 3,
			Type:   question.TypeRadio,
			Name:   "entry.3",
			Choices: []question.Choice{
				{Label: "Friend", Value: "Friend"},
				{Label: question.OtherOptionValue, Value: question.OtherOptionValue},
			},
			ChoiceOther: true,
		},
		{
			Label:   "Days",
			Number:  4,
			Type:    question.TypeCheckbox,
			Name:    "entry.4",
			Choices: []question.Choice{{Label: "Sat", Value: "Sat"}, {Label: "Sun", Value: "Sun"}},
		},
		{
			Label:   "Area",
			Number:  5,
			Type:    question.TypeSelect,
			Name:    "entry.5",
			Choices: []question.Choice{{Label: "North side", Value: "north"}},
		},
		{Label: question.UnknownLabel, Number: 6, Type: question.TypeUnknown, Name: question.UnknownName},
	}
}

func TestCollectWalksCatalog(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"ada@example.com", "A podcast"},
		textAreas: []string{"hello"},
		selectIdx: []int{1, 0},
		multiIdx:  [][]int{{0, 1}},
	}
	p := New(WithPromptDriver(driver))

	values, err := p.Collect(context.Background(), catalog())
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"entry.1":                       "ada@example.com",
		"entry.2":                       "hello",
		"entry.3":                       question.OtherOptionValue,
		"entry.3.other_option_response": "A podcast",
		"entry.4":                       []string{"Sat", "Sun"},
		"entry.5":                       "north",
	}, values)

	require.Len(t, driver.infoMessages, 1)
	require.Contains(t, driver.infoMessages[0], "question 6")

	require.Equal(t, "Name *", driver.inputCfgs[0].Message)
	require.True(t, driver.inputCfgs[0].Required)
	require.Equal(t, []string{"Friend", otherLabel}, driver.selectCfgs[0].Options)
	require.Equal(t, []string{"North side"}, driver.selectCfgs[2].Options)
}

func TestTextValidatorUsesInputType(t *testing.T) {
	driver := &stubDriver{inputs: []string{"x"}}
	p := New(WithPromptDriver(driver))

	_, err := p.Collect(context.Background(), catalog()[:1])
	require.NoError(t, err)

	validate := driver.inputCfgs[0].Validator
	require.NotNil(t, validate)
	require.Error(t, validate("not-an-email"))
	require.NoError(t, validate("ada@example.com"))
	require.NoError(t, validate(""))
}

func TestRenderFormEncoded(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"ada@example.com"},
		textAreas: []string{"a b"},
		selectIdx: []int{0, 0},
		multiIdx:  [][]int{{0, 1}},
	}
	p := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatFormURLEncoded))

	out, err := p.Render(context.Background(), catalog())
	require.NoError(t, err)
	require.Equal(t, "entry.1=ada%40example.com&entry.2=a+b&entry.3=Friend&entry.4=Sat&entry.4=Sun&entry.5=north", string(out))
}

func TestRenderJSON(t *testing.T) {
	driver := &stubDriver{textAreas: []string{"hi"}}
	p := New(WithPromptDriver(driver))

	out, err := p.Render(context.Background(), catalog()[1:2])
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Equal(t, map[string]any{"entry.2": "hi"}, decoded)
}

func TestCollectPropagatesAbort(t *testing.T) {
	p := New(WithPromptDriver(&abortDriver{}))

	_, err := p.Collect(context.Background(), catalog())
	require.ErrorIs(t, err, ErrAborted)
}

func TestCollectRejectsEmptyChoices(t *testing.T) {
	p := New(WithPromptDriver(&stubDriver{}))

	_, err := p.Collect(context.Background(), []question.Question{{Number: 1, Type: question.TypeSelect, Name: "s"}})
	require.ErrorIs(t, err, ErrNoChoices)
}

type abortDriver struct{ stubDriver }

func (abortDriver) Input(context.Context, InputConfig) (string, error) {
	return "", ErrAborted
}
