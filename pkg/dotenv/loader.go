package dotenv

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultFile is loaded by Init, relative to the working directory.
	DefaultFile = ".env"

	commentPrefix = "#"
)

// Loader applies dotenv files to a Store.
type Loader struct {
	Store  Store
	Policy Policy

	// Logger, when set, receives a debug entry per assignment handed to the
	// Policy, whether or not it changed the Store. Values are never logged.
	Logger logrus.FieldLogger
}

// New creates a Loader. A nil store means the process environment.
func New(store Store, policy Policy) *Loader {
	if store == nil {
		store = OSStore{}
	}
	return &Loader{Store: store, Policy: policy}
}

// Init loads DefaultFile into the process environment.
func Init(policy Policy) error {
	return New(nil, policy).Init()
}

// LoadFile loads filename into the process environment.
func LoadFile(filename string, policy Policy) error {
	return New(nil, policy).LoadFile(filename)
}

// Load reads assignments from r into the process environment.
func Load(r io.Reader, policy Policy) error {
	return New(nil, policy).Load(r)
}

// Init loads DefaultFile.
func (l *Loader) Init() error {
	return l.LoadFile(DefaultFile)
}

// LoadFile opens filename and loads it. The file is closed before returning.
func (l *Loader) LoadFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return &Error{Op: OpOpen, Path: filename, Err: err}
	}
	defer f.Close()

	return l.load(f, filename)
}

// Load reads r line by line and applies each assignment in order. It stops
// at the first read or apply failure; keys applied before it stay applied.
func (l *Loader) Load(r io.Reader) error {
	return l.load(r, "")
}

func (l *Loader) load(r io.Reader, path string) error {
	store := l.Store
	if store == nil {
		store = OSStore{}
	}

	reader := bufio.NewReader(r)
	for lineNum := 1; ; lineNum++ {
		raw, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return &Error{Op: OpRead, Path: path, Line: lineNum, Err: err}
		}
		if raw == "" && err == io.EOF {
			return nil
		}

		if lineErr := l.loadLine(store, path, lineNum, raw); lineErr != nil {
			return lineErr
		}
		if err == io.EOF {
			return nil
		}
	}
}

func (l *Loader) loadLine(store Store, path string, lineNum int, raw string) error {
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")
	if !utf8.ValidString(raw) {
		return &Error{Op: OpRead, Path: path, Line: lineNum, Err: ErrInvalidUTF8}
	}

	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, commentPrefix) {
		return nil
	}

	line := ParseLine(text)
	line.Key = strings.TrimSpace(line.Key)
	if line.Key == "" {
		return nil
	}

	if err := l.Policy.Apply(store, line); err != nil {
		return &Error{Op: OpApply, Path: path, Line: lineNum, Key: line.Key, Err: err}
	}

	if l.Logger != nil {
		l.Logger.WithFields(logrus.Fields{
			"key":    line.Key,
			"line":   lineNum,
			"policy": l.Policy.String(),
		}).Debug("Processed dotenv line")
	}
	return nil
}
