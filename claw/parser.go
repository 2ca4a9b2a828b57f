package claw

import (
	"fmt"
	"strings"

	"github.com/dzonerzy/go-claw/internal/fuzzy"
	"github.com/dzonerzy/go-claw/internal/intern"
)

// suggestionMaxDistance bounds the edit distance for unknown-flag hints.
const suggestionMaxDistance = 2

// Parse consumes tokens in a single left-to-right pass, dispatching
// sub-argument runs to the matching parameters. tokens is the process
// argument list with the executable path already removed.
//
// Parse either completes or fails before returning; on failure, parameters
// matched earlier in the same call keep their decoded values (failure is
// not rolled back), and required-parameter state is only meaningful after
// a nil return.
func (p *Parser) Parse(tokens []string) error {
	cursor := 0
	separatorSeen := false

	for cursor < len(tokens) {
		tok := tokens[cursor]

		if tok == "--" {
			// Explicit separator: everything after belongs to the
			// positional, hyphens and all. An empty remainder is fine.
			cursor++
			separatorSeen = true
			break
		}

		if strings.HasPrefix(tok, "--") {
			name := intern.Intern(tok[2:])
			param, ok := p.longIndex[name]
			if !ok {
				return p.unknownFlagError("--", name)
			}
			consumed, err := p.readNamed(param, tokens[cursor+1:])
			if err != nil {
				return err
			}
			cursor += 1 + consumed
			continue
		}

		if strings.HasPrefix(tok, "-") {
			name := intern.Intern(tok[1:])
			param, ok := p.shortIndex[name]
			if !ok {
				return p.unknownFlagError("-", name)
			}
			consumed, err := p.readNamed(param, tokens[cursor+1:])
			if err != nil {
				return err
			}
			cursor += 1 + consumed
			continue
		}

		// Bare token: start of the positional run, or garbage when no
		// positional group exists.
		if p.positional == nil {
			return parseErrorf(ErrorTypeLeftoverArgs,
				"there are leftover arguments that could not be parsed: %s", quote(tok))
		}
		break
	}

	if p.positional != nil {
		if err := p.readPositional(tokens[cursor:], separatorSeen); err != nil {
			return err
		}
	}

	return p.validateRequired()
}

// readNamed resolves how many of the following tokens belong to param and
// reads exactly those. rest starts at the token after the flag itself.
// Returns the number of tokens consumed beyond the flag token.
func (p *Parser) readNamed(param NamedParameter, rest []string) (int, error) {
	available := countAvailable(rest)
	if min := param.MinArgs(); available < min {
		return 0, &ParseError{
			Type: ErrorTypeMissingValue,
			Message: fmt.Sprintf("fewer arguments (%d) specified than required (%d) for flag %s",
				available, min, representationName(param)),
			Flag: representationName(param),
		}
	}
	// Greedy but capped: a fixed two-value flag stops after two tokens even
	// when more non-flag tokens follow; those fall through to the next loop
	// iteration.
	consume := param.MaxArgs()
	if available < consume {
		consume = available
	}
	if err := param.Read(rest[:consume]); err != nil {
		return 0, err
	}
	return consume, nil
}

// readPositional hands the remaining span to the positional group.
// afterSeparator suspends the leading-hyphen stop so negative numbers and
// dash-prefixed paths can be positional values.
func (p *Parser) readPositional(rest []string, afterSeparator bool) error {
	available := len(rest)
	if !afterSeparator {
		available = countAvailable(rest)
	}
	if min := p.positional.MinArgs(); available < min {
		return &ParseError{
			Type: ErrorTypeMissingValue,
			Message: fmt.Sprintf("fewer arguments (%d) specified than required (%d) for positional arguments",
				available, min),
			Flag: p.positional.Description(),
		}
	}
	if max := p.positional.MaxArgs(); available > max {
		return &ParseError{
			Type: ErrorTypeTooManyValues,
			Message: fmt.Sprintf("more arguments (%d) specified than allowed (%d) for positional arguments",
				available, max),
			Flag: p.positional.Description(),
		}
	}
	return p.positional.Read(rest)
}

// validateRequired runs after both loops: every required named parameter
// in registration order, then the positional last.
func (p *Parser) validateRequired() error {
	for _, param := range p.ordered {
		if param.IsRequired() && !param.SetByUser() {
			return &ParseError{
				Type:    ErrorTypeMissingRequired,
				Message: fmt.Sprintf("required flag %s was not provided", representationName(param)),
				Flag:    representationName(param),
			}
		}
	}
	if p.positional != nil && p.positional.IsRequired() && !p.positional.SetByUser() {
		return &ParseError{
			Type: ErrorTypeMissingRequired,
			Message: fmt.Sprintf("required positional argument %s was not provided",
				quote(p.positional.Description())),
			Flag: p.positional.Description(),
		}
	}
	return nil
}

// countAvailable counts contiguous tokens that do not start with '-'.
// Leading-hyphen tokens always look flag-like here, including negative
// numbers; the -- separator is the escape hatch.
func countAvailable(tokens []string) int {
	for i, tok := range tokens {
		if strings.HasPrefix(tok, "-") {
			return i
		}
	}
	return len(tokens)
}

func (p *Parser) unknownFlagError(prefix, name string) error {
	return &ParseError{
		Type:       ErrorTypeUnknownFlag,
		Message:    fmt.Sprintf("not a valid argument: %s%s", prefix, name),
		Flag:       name,
		Suggestion: fuzzy.FindBestFlag(name, p.flagNames(), suggestionMaxDistance),
	}
}
