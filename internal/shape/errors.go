package shape

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	EmptyFile ErrorKind = iota
	FieldCountMismatch
	InvalidFieldValue
	UnrecognizedShapeKind
	EmptySaveName
	FileUnreadable
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyFile:
		return "EmptyFile"
	case FieldCountMismatch:
		return "FieldCountMismatch"
	case InvalidFieldValue:
		return "InvalidFieldValue"
	case UnrecognizedShapeKind:
		return "UnrecognizedShapeKind"
	case EmptySaveName:
		return "EmptySaveName"
	case FileUnreadable:
		return "FileUnreadable"
	default:
		return "Unknown"
	}
}

func (k ErrorKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// ParseError describes one rejected line. Line is the raw source text, empty
// when the condition applies to the whole file.
type ParseError struct {
	ID      int       `json:"id"`
	Line    string    `json:"line"`
	Message string    `json:"message"`
	Kind    ErrorKind `json:"kind"`
}

func (e ParseError) Error() string {
	if e.Line == "" {
		return e.Message
	}
	return e.Message + " " + e.Line
}

// Bundle is what the error overlay displays. A bundle without logs means
// there is nothing to show.
type Bundle struct {
	Title string       `json:"title"`
	Logs  []ParseError `json:"logs"`
}

func (b Bundle) Empty() bool { return len(b.Logs) == 0 }

const (
	TitleEmptyFile = "Empty file"
	TitleParse     = "Shapes were not rendered"
	TitleSave      = "Save error"
	TitleFile      = "File error"
)

const (
	msgEmptyFile      = "There are no contents in this file. Please select another."
	msgUnsupported    = "Not supported shape data:"
	msgEmptySaveName  = "File name is empty:"
	lineEmptySaveName = "Please enter a new file name and try again."
	msgFileUnreadable = "File undefined. Select new file."
)

// fieldCountMessage and invalidFieldMessage name the shape in lower case, the
// way users write the tag.
func fieldCountMessage(k Kind) string {
	return fmt.Sprintf("The following data has insufficient data points for %ss:", strings.ToLower(k.String()))
}

func invalidFieldMessage(k Kind) string {
	return fmt.Sprintf("The following line does not have the correct data format for %s and cannot be rendered:", strings.ToLower(k.String()))
}

func emptyFileBundle() Bundle {
	return Bundle{Title: TitleEmptyFile, Logs: []ParseError{{ID: 0, Message: msgEmptyFile, Kind: EmptyFile}}}
}

func emptySaveNameBundle() Bundle {
	return Bundle{Title: TitleSave, Logs: []ParseError{{ID: 0, Line: lineEmptySaveName, Message: msgEmptySaveName, Kind: EmptySaveName}}}
}

func fileErrorBundle() Bundle {
	return Bundle{Title: TitleFile, Logs: []ParseError{{ID: 0, Message: msgFileUnreadable, Kind: FileUnreadable}}}
}
