package views

// Block is one element of a view. The concrete types below form a closed set.
type Block interface{ isBlock() }

type Heading struct {
	Text string
	Sub  string
}

type Text struct {
	Text  string
	Muted bool
}

// Button is an activatable region.
type Button struct {
	ID      string
	Label   string
	Primary bool
}

// Link navigates to Href when activated.
type Link struct {
	ID    string
	Label string
	Href  string
}

type Note struct {
	Title string
	Meta  string
	Body  string
}

type Notes struct {
	Title string
	Items []Note
}

// Panel is a region that starts hidden unless Visible is set. TextID names a
// text region inside the panel that wiring may fill in.
type Panel struct {
	ID      string
	Visible bool
	Lines   []string
	TextID  string
}

// Indicator is a binary on/off region, such as the face-detect circle.
type Indicator struct {
	ID       string
	Label    string
	On       bool
	OnLabel  string
	OffLabel string
}

// Placeholder stands in for a widget that only has a label, like the
// calendar card. TextID, when set, names a text region inside it.
type Placeholder struct {
	Label  string
	TextID string
}

type FieldKind int

const (
	FieldText FieldKind = iota
	FieldPassword
	FieldDate
	FieldNumber
	FieldCheckbox
	FieldChoice
	FieldRange
)

type Field struct {
	Name        string
	Label       string
	Kind        FieldKind
	Required    bool
	Placeholder string
	Value       string
	Options     []string
	Min, Max    int
}

// Form is submitted as a whole. Blocks are drawn between the fields and the
// submit button.
type Form struct {
	ID     string
	Fields []Field
	Blocks []Block
	Submit string
	Footer *Link
}

func (Heading) isBlock()     {}
func (Text) isBlock()        {}
func (Button) isBlock()      {}
func (Link) isBlock()        {}
func (Notes) isBlock()       {}
func (Panel) isBlock()       {}
func (Indicator) isBlock()   {}
func (Placeholder) isBlock() {}
func (Form) isBlock()        {}

// Field looks up a field by name.
func (f Form) Field(name string) (Field, bool) {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld, true
		}
	}
	return Field{}, false
}
