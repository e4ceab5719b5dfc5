package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formsite/pkg/question"
)

// MetaSection is the data file key holding per-question metadata. It cannot
// double as a language code.
const MetaSection = "meta"

// ErrReservedLanguage reports a language code that collides with MetaSection.
var ErrReservedLanguage = errors.New("scaffold: language collides with the meta section")

// MarshalData encodes the _data/questions.yml document: a meta section with
// name, label and required per question, and a language section with the
// label plus the choice list for choice-bearing questions. Keys follow
// numbering order.
func MarshalData(questions []question.Question, language string) ([]byte, error) {
	if language == MetaSection {
		return nil, fmt.Errorf("%w: %q", ErrReservedLanguage, language)
	}

	meta := mappingNode()
	lang := mappingNode()

	for _, q := range questions {
		key := q.Key()

		entry := mappingNode()
		appendPair(entry, "name", stringNode(q.Name))
		appendPair(entry, "label", stringNode(q.Label))
		appendPair(entry, "required", boolNode(q.Required))
		appendPair(meta, key, entry)

		appendPair(lang, key, languageEntry(q))
	}

	root := mappingNode()
	appendPair(root, MetaSection, meta)
	appendPair(root, language, lang)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, fmt.Errorf("encode data file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode data file: %w", err)
	}
	return buf.Bytes(), nil
}

func languageEntry(q question.Question) *yaml.Node {
	entry := mappingNode()
	appendPair(entry, "label", stringNode(q.Label))
	if !q.HasChoices() {
		return entry
	}

	choices := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, c := range q.Choices {
		item := mappingNode()
		appendPair(item, "label", stringNode(c.Label))
		appendPair(item, "value", stringNode(c.Value))
		choices.Content = append(choices.Content, item)
	}
	appendPair(entry, "choices", choices)
	appendPair(entry, "choice_other", boolNode(q.ChoiceOther))
	return entry
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func boolNode(value bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(value)}
}

func appendPair(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content, stringNode(key), value)
}
