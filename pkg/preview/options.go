package preview

// OutputFormat controls how collected answers are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits a JSON object keyed by field name.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits the body a form submission would post.
	OutputFormatFormURLEncoded OutputFormat = "form"
)

// Option configures the Previewer.
type Option func(*Previewer)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(p *Previewer) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(p *Previewer) {
		if format != "" {
			p.outputFormat = format
		}
	}
}
