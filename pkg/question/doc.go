// Package question defines the typed survey question catalog produced by the
// markup extractor and consumed by the site scaffolder. Questions are plain
// values: they are created once per run from a single parsed document and are
// never mutated afterwards. Struct tags use the snake_case keys that templates
// and the generated data file rely on (`question_number`, `qtype`,
// `choice_other`).
package question
