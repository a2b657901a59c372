package dpyr

// A Displayer presents Records to the user, e.g. in a terminal or a notebook front-end
type Displayer interface {
	Display(label string, records *Records) error
}
