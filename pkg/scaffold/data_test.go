package scaffold_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formsite/pkg/question"
	"github.com/goliatone/go-formsite/pkg/scaffold"
)

type metaEntry struct {
	Name     string `yaml:"name"`
	Label    string `yaml:"label"`
	Required bool   `yaml:"required"`
}

type languageEntry struct {
	Label       string            `yaml:"label"`
	Choices     []question.Choice `yaml:"choices"`
	ChoiceOther *bool             `yaml:"choice_other"`
}

func TestMarshalDataRoundTrip(t *testing.T) {
	questions := []question.Question{
		{Label: "Nome completo", Number: 1, Type: question.TypeText, Required: true, Name: "entry.1", InputType: "text"},
		{
			Label:  "Bairro",
			Number: 2,
			Type:   question.TypeSelect,
			Name:   "entry.2",
			Choices: []question.Choice{
				{Label: "São João", Value: "sao-joao"},
				{Label: "yes", Value: "true"},
			},
		},
		{
			Label:       "Dias",
			Number:      3,
			Type:        question.TypeCheckbox,
			Name:        "entry.3",
			Choices:     []question.Choice{{Label: "Sábado", Value: "Sábado"}},
			ChoiceOther: true,
		},
	}

	data, err := scaffold.MarshalData(questions, "pt")
	require.NoError(t, err)
	require.Contains(t, string(data), "São João", "unicode is written as-is")

	var decoded struct {
		Meta map[string]metaEntry     `yaml:"meta"`
		Lang map[string]languageEntry `yaml:"pt"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	require.Len(t, decoded.Meta, 3)
	require.Equal(t, metaEntry{Name: "entry.1", Label: "Nome completo", Required: true}, decoded.Meta["q_1"])
	require.Equal(t, metaEntry{Name: "entry.2", Label: "Bairro"}, decoded.Meta["q_2"])

	text := decoded.Lang["q_1"]
	require.Equal(t, "Nome completo", text.Label)
	require.Nil(t, text.Choices)
	require.Nil(t, text.ChoiceOther)

	sel := decoded.Lang["q_2"]
	require.Equal(t, questions[1].Choices, sel.Choices, "bool-like strings stay strings")
	require.NotNil(t, sel.ChoiceOther)
	require.False(t, *sel.ChoiceOther)

	check := decoded.Lang["q_3"]
	require.NotNil(t, check.ChoiceOther)
	require.True(t, *check.ChoiceOther)
}

func TestMarshalDataKeyOrder(t *testing.T) {
	var questions []question.Question
	for i := 1; i <= 11; i++ {
		questions = append(questions, question.Question{Label: "q", Number: i, Type: question.TypeText, Name: "n"})
	}

	data, err := scaffold.MarshalData(questions, "en")
	require.NoError(t, err)

	var root yaml.Node
	require.NoError(t, yaml.Unmarshal(data, &root))
	doc := root.Content[0]
	require.Equal(t, "meta", doc.Content[0].Value)
	require.Equal(t, "en", doc.Content[2].Value)

	for _, section := range []*yaml.Node{doc.Content[1], doc.Content[3]} {
		var keys []string
		for i := 0; i < len(section.Content); i += 2 {
			keys = append(keys, section.Content[i].Value)
		}
		require.Equal(t, "q_1,q_2,q_3,q_4,q_5,q_6,q_7,q_8,q_9,q_10,q_11", strings.Join(keys, ","))
	}

	require.True(t, strings.HasPrefix(string(data), "meta:\n  q_1:\n    name: n\n    label: q\n    required: false\n"))
}

func TestMarshalDataIsDeterministic(t *testing.T) {
	questions := []question.Question{{Label: "a", Number: 1, Type: question.TypeRadio, Name: "r", Choices: []question.Choice{{Label: "x", Value: "x"}}}}

	first, err := scaffold.MarshalData(questions, "en")
	require.NoError(t, err)
	second, err := scaffold.MarshalData(questions, "en")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestMarshalDataRejectsMetaLanguage(t *testing.T) {
	_, err := scaffold.MarshalData(sampleQuestions(), scaffold.MetaSection)
	require.ErrorIs(t, err, scaffold.ErrReservedLanguage)

	data, err := scaffold.MarshalData(sampleQuestions(), "metadata")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.Contains(t, doc, "meta")
	require.Contains(t, doc, "metadata")
}
