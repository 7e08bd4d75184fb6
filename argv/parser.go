package argv

import (
	"os"

	"github.com/dzonerzy/go-argv/internal/intern"
	"github.com/dzonerzy/go-argv/internal/pool"
)

// Parse converts an argument vector into a Result.
//
// args[0] is taken as the program name when it contains a ".ext" suffix.
// The next token becomes the command unless it is an option. Clustered
// short options are then expanded and each option is paired with the
// non-option token that follows it, if any.
//
// A non-option token that is followed by another non-option token yields an
// unassociated-argument *ParseError naming the second one, except when the
// first is the final token. args is never modified.
func Parse(args []string) (*Result, error) {
	if len(args) == 0 {
		return nil, NewParseError(ErrorTypeEmptyVector, ErrEmptyVector.Error())
	}

	res := &Result{}
	work, offset := args, 0
	if app, ok := stripAppSuffix(args[0]); ok {
		res.App, res.HasApp = app, true
		work, offset = args[1:], 1
	}

	if len(work) > 0 && !IsOption(work[0]) {
		res.Command, res.HasCommand = work[0], true
	}

	buf := pool.GetTokens()
	defer pool.PutTokens(buf)
	*buf = appendNormalized(*buf, work)
	tokens := *buf

	res.Options = newOptions(len(tokens))
	last := len(tokens) - 1

	for i, tok := range tokens {
		// The final token looks ahead at itself
		j := i + 1
		if i == last {
			j = i
		}
		next := tokens[j]

		switch {
		case IsOption(tok) && !IsOption(next):
			res.Options.attach(intern.Intern(tok), Coerce(next))
		case IsOption(tok):
			res.Options.set(intern.Intern(tok), Null())
		case i < last && !IsOption(next):
			return nil, newUnassociatedError(next, offset+originIndex(work, j))
		}
	}

	return res, nil
}

// ParseOS parses the running process's os.Args.
func ParseOS() (*Result, error) {
	return Parse(os.Args)
}

// MustParse is like Parse but panics on error.
func MustParse(args []string) *Result {
	res, err := Parse(args)
	if err != nil {
		panic(err)
	}
	return res
}

// originIndex maps an index in the normalized sequence back to the index of
// the work token that produced it.
func originIndex(work []string, normalized int) int {
	seen := 0
	for i, tok := range work {
		seen += expandedLen(tok)
		if normalized < seen {
			return i
		}
	}
	return len(work) - 1
}
