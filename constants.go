package sass

// OutputStyle selects how the engine formats the generated CSS.
type OutputStyle string

const (
	Nested     OutputStyle = "nested"
	Expanded   OutputStyle = "expanded"
	Compressed OutputStyle = "compressed"
)

// SourceComments selects whether the engine emits comments pointing back at
// the Sass source of each rule.
type SourceComments string

const (
	SourceCommentsNone    SourceComments = "none"
	SourceCommentsDefault SourceComments = "default"
	SourceCommentsMap     SourceComments = "map"
)

var outputStyles = []OutputStyle{Nested, Expanded, Compressed}
var sourceCommentModes = []SourceComments{
	SourceCommentsNone, SourceCommentsDefault, SourceCommentsMap,
}

// OutputStyles lists the recognized output styles.
func OutputStyles() []OutputStyle {
	return append([]OutputStyle(nil), outputStyles...)
}

// SourceCommentModes lists the recognized source comment modes.
func SourceCommentModes() []SourceComments {
	return append([]SourceComments(nil), sourceCommentModes...)
}

func (s OutputStyle) Valid() bool {
	for _, v := range outputStyles {
		if v == s {
			return true
		}
	}
	return false
}

func (s SourceComments) Valid() bool {
	for _, v := range sourceCommentModes {
		if v == s {
			return true
		}
	}
	return false
}

func (s OutputStyle) String() string    { return string(s) }
func (s SourceComments) String() string { return string(s) }
