package text

import "golang.org/x/text/encoding/charmap"

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
	decoder    *charmap.Charmap
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName, // Default parser (ximage)
		decoder:    charmap.ISO8859_1,
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype;
// "gotext" uses github.com/go-text/typesetting.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithByteDecoder sets the single-byte character map used to turn the
// bytes of a Line into codepoints. The default is ISO 8859-1, where every
// byte value is its own codepoint. A nil map keeps the default.
func WithByteDecoder(cm *charmap.Charmap) SourceOption {
	return func(c *sourceConfig) {
		if cm != nil {
			c.decoder = cm
		}
	}
}
