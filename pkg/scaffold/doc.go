// Package scaffold writes a Jekyll site for an extracted question catalog.
//
// A run renders the site config and the per-language pages, copies the
// verbatim support files and the static tree, writes _data/questions.yml and
// assembles _layouts/form.html from one fragment per question. Re-running
// against the same output produces byte-identical files.
package scaffold
