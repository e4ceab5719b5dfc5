package scaffold_test

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/goliatone/go-formsite/pkg/question"
	"github.com/goliatone/go-formsite/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formsite/pkg/scaffold"
	"github.com/goliatone/go-formsite/pkg/sink"
	"github.com/goliatone/go-formsite/pkg/testsupport"
)

func baseTemplates() fstest.MapFS {
	return fstest.MapFS{
		"_config.yml":                   {Data: []byte("form_key: {{ key }}\n")},
		"lang/index.html":               {Data: []byte("index {{ language }}\n")},
		"lang/thanks.html":              {Data: []byte("thanks {{ language }}\n")},
		"lang/about.html":               {Data: []byte("about {{ language }}\n")},
		"Gemfile":                       {Data: []byte("source \"https://rubygems.org\"\n")},
		"index.html":                    {Data: []byte("{{ site.title }}\n")},
		"_layouts/base.html":            {Data: []byte("base {{ content }}\n")},
		"_layouts/default.html":         {Data: []byte("default {{ content }}\n")},
		"_layouts/page.html":            {Data: []byte("page {{ content }}\n")},
		"static/css/form.css":           {Data: []byte("body {}\n")},
		"static/js/form.js":             {Data: []byte("void 0;\n")},
		"form/form_head.html":           {Data: []byte("HEAD {{ questions|length }} {{ language }}")},
		"form/field_head.html":          {Data: []byte("[{{ question.question_number }}]")},
		"form/form_text.html":           {Data: []byte("text:{{ question.name }}")},
		"form/form_radio.html":          {Data: []byte("radio:{% for c in question.choices %}{{ c.value }};{% endfor %}")},
		"form/form_tail.html":           {Data: []byte("TAIL")},
		"form/form_paragraph-text.html": {Data: []byte("para")},
	}
}

func sampleQuestions() []question.Question {
	return []question.Question{
		{Label: "Name", Number: 1, Type: question.TypeText, Required: true, Name: "entry.1", InputType: "text"},
		{
			Label:  "Colour",
			Number: 2,
			Type:   question.TypeRadio,
			Name:   "entry.2",
			Choices: []question.Choice{
				{Label: "Red", Value: "Red"},
				{Label: question.OtherOptionValue, Value: question.OtherOptionValue},
			},
			ChoiceOther: true,
		},
		{Label: question.UnknownLabel, Number: 3, Type: question.TypeUnknown, Name: question.UnknownName},
	}
}

func newScaffolder(t *testing.T, templates fstest.MapFS, options ...scaffold.Option) (*scaffold.Scaffolder, *sink.FS) {
	t.Helper()

	out := sink.New(memfs.New())
	opts := append([]scaffold.Option{scaffold.WithTemplates(templates), scaffold.WithSink(out)}, options...)
	sc, err := scaffold.New(opts...)
	require.NoError(t, err)
	return sc, out
}

func TestScaffoldWritesEveryOutput(t *testing.T) {
	sc, out := newScaffolder(t, baseTemplates())

	require.NoError(t, sc.Scaffold(testsupport.Context(), sampleQuestions(), "formKey"))

	tree := testsupport.MustReadTree(t, out.Filesystem())
	var paths []string
	for p := range tree {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	want := []string{
		"Gemfile",
		"_config.yml",
		"_data/questions.yml",
		"_layouts/base.html",
		"_layouts/default.html",
		"_layouts/form.html",
		"_layouts/page.html",
		"en/about/index.html",
		"en/index.html",
		"en/thanks/index.html",
		"index.html",
		"static/css/form.css",
		"static/js/form.js",
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("output paths mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, "form_key: formKey\n", tree["_config.yml"])
	require.Equal(t, "thanks en\n", tree["en/thanks/index.html"])
	require.Equal(t, "{{ site.title }}\n", tree["index.html"], "verbatim files are not rendered")
}

func TestScaffoldFormAssembly(t *testing.T) {
	templates := baseTemplates()
	templates["form/q_1.html"] = &fstest.MapFile{Data: []byte("override:{{ question.label }}")}
	sc, out := newScaffolder(t, templates)

	require.NoError(t, sc.Scaffold(testsupport.Context(), sampleQuestions(), "k"))

	got := testsupport.MustReadTree(t, out.Filesystem())["_layouts/form.html"]
	goldenPath := filepath.Join("testdata", "form.golden.html")
	if testsupport.WriteMaybeGolden(t, goldenPath, []byte(got)) {
		return
	}
	require.Equal(t, string(testsupport.MustReadGolden(t, goldenPath)), got)
}

func TestScaffoldEmptyCatalog(t *testing.T) {
	sc, out := newScaffolder(t, baseTemplates())

	require.NoError(t, sc.Scaffold(testsupport.Context(), nil, "k"))

	tree := testsupport.MustReadTree(t, out.Filesystem())
	require.Equal(t, "HEAD 0 en\n\nTAIL", tree["_layouts/form.html"])
	require.Equal(t, "meta: {}\nen: {}\n", tree["_data/questions.yml"])
}

func TestScaffoldMissingTemplatesRenderEmpty(t *testing.T) {
	templates := baseTemplates()
	delete(templates, "lang/about.html")
	delete(templates, "form/form_head.html")
	delete(templates, "form/field_head.html")
	delete(templates, "form/form_tail.html")
	sc, out := newScaffolder(t, templates)

	require.NoError(t, sc.Scaffold(testsupport.Context(), sampleQuestions()[:1], "k"))

	tree := testsupport.MustReadTree(t, out.Filesystem())
	require.Equal(t, "", tree["en/about/index.html"])
	require.Equal(t, "\n\ntext:entry.1\n\n", tree["_layouts/form.html"])
}

func TestScaffoldIsIdempotent(t *testing.T) {
	sc, out := newScaffolder(t, baseTemplates())
	ctx := testsupport.Context()

	require.NoError(t, sc.Scaffold(ctx, sampleQuestions(), "k"))
	first := testsupport.MustReadTree(t, out.Filesystem())

	require.NoError(t, util.WriteFile(out.Filesystem(), "static/stale.css", []byte("old"), 0o644))
	require.NoError(t, sc.Scaffold(ctx, sampleQuestions(), "k"))
	second := testsupport.MustReadTree(t, out.Filesystem())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second run differs (-first +second):\n%s", diff)
	}
}

func TestScaffoldLanguage(t *testing.T) {
	sc, out := newScaffolder(t, baseTemplates(), scaffold.WithLanguage("fr"))
	require.Equal(t, "fr", sc.Language())

	require.NoError(t, sc.Scaffold(testsupport.Context(), sampleQuestions(), "k"))

	tree := testsupport.MustReadTree(t, out.Filesystem())
	require.Equal(t, "index fr\n", tree["fr/index.html"])
	require.Equal(t, "about fr\n", tree["fr/about/index.html"])
	require.True(t, strings.HasPrefix(tree["_layouts/form.html"], "HEAD 3 fr"))
	require.Contains(t, tree["_data/questions.yml"], "\nfr:\n")
}

func TestScaffoldSeedsLanguageIntoInjectedRenderer(t *testing.T) {
	templates := baseTemplates()
	templates["form/form_text.html"] = &fstest.MapFile{Data: []byte("text:{{ language }}")}
	engine, err := gotemplate.New(gotemplate.WithFS(templates))
	require.NoError(t, err)

	sc, out := newScaffolder(t, templates, scaffold.WithRenderer(engine), scaffold.WithLanguage("de"))
	require.NoError(t, sc.Scaffold(testsupport.Context(), sampleQuestions()[:1], "k"))

	tree := testsupport.MustReadTree(t, out.Filesystem())
	require.Equal(t, "thanks de\n", tree["de/thanks/index.html"])
	require.Equal(t, "HEAD 1 de\n\n[1]text:de\n\nTAIL", tree["_layouts/form.html"])
}

func TestScaffoldRejectsMetaLanguage(t *testing.T) {
	sc, out := newScaffolder(t, baseTemplates(), scaffold.WithLanguage("meta"))

	err := sc.Scaffold(testsupport.Context(), sampleQuestions(), "k")
	require.ErrorIs(t, err, scaffold.ErrReservedLanguage)

	_, written := testsupport.MustReadTree(t, out.Filesystem())["_data/questions.yml"]
	require.False(t, written)
}

func TestScaffoldEncodesRenderedFiles(t *testing.T) {
	templates := baseTemplates()
	templates["lang/index.html"] = &fstest.MapFile{Data: []byte("café")}
	sc, out := newScaffolder(t, templates, scaffold.WithEncoding(charmap.ISO8859_1))

	require.NoError(t, sc.Scaffold(testsupport.Context(), nil, "k"))

	tree := testsupport.MustReadTree(t, out.Filesystem())
	require.Equal(t, "caf\xe9", tree["en/index.html"])
}

func TestScaffoldUnencodableOutputFails(t *testing.T) {
	templates := baseTemplates()
	templates["lang/index.html"] = &fstest.MapFile{Data: []byte("日本")}
	sc, _ := newScaffolder(t, templates, scaffold.WithEncoding(charmap.ISO8859_1))

	require.Error(t, sc.Scaffold(testsupport.Context(), nil, "k"))
}

func TestScaffoldMissingCopySource(t *testing.T) {
	templates := baseTemplates()
	delete(templates, "Gemfile")
	sc, _ := newScaffolder(t, templates)

	err := sc.Scaffold(testsupport.Context(), nil, "k")
	require.ErrorIs(t, err, sink.ErrOutputWrite)
}

func TestScaffoldMissingStaticTree(t *testing.T) {
	templates := baseTemplates()
	delete(templates, "static/css/form.css")
	delete(templates, "static/js/form.js")
	sc, _ := newScaffolder(t, templates)

	err := sc.Scaffold(testsupport.Context(), nil, "k")
	require.ErrorIs(t, err, sink.ErrOutputWrite)
}

func TestScaffoldCancelledContext(t *testing.T) {
	sc, out := newScaffolder(t, baseTemplates())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, sc.Scaffold(ctx, nil, "k"), context.Canceled)
	require.Empty(t, testsupport.MustReadTree(t, out.Filesystem()))
}

func TestNewRequiresTemplatesAndSink(t *testing.T) {
	_, err := scaffold.New(scaffold.WithSink(sink.New(memfs.New())))
	require.Error(t, err)

	_, err = scaffold.New(scaffold.WithTemplates(baseTemplates()))
	require.Error(t, err)
}

func TestFragmentCandidates(t *testing.T) {
	q := question.Question{Number: 7, Type: question.TypeParagraphText}
	require.Equal(t, []string{"form/q_7.html", "form/form_paragraph-text.html"}, scaffold.FragmentCandidates(q))
}
