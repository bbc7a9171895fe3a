package command

import (
	"strconv"

	"github.com/zxconsole/zxconsole/internal/zxerr"
)

// Parser turns a token stream into a Command (spec §4.7's
// "noun_ref* verb_or_listing" grammar). Parsing is strict: an unrecognized
// switch or token fails the command without partial effect (spec §4.7).
type Parser struct {
	lex *Lexer
	cur Token
}

// NewParser creates a parser over input.
func NewParser(input string) *Parser {
	p := &Parser{lex: NewLexer(input)}
	p.advance()
	return p
}

func (p *Parser) advance() { p.cur = p.lex.NextToken() }

// Parse consumes the entire input and returns the parsed Command.
func (p *Parser) Parse() (*Command, error) {
	cmd := &Command{}

	for p.cur.Type == TokenIdent && IsNoun(p.cur.Literal) {
		ref := NounRef{Kind: p.cur.Literal}
		p.advance()
		if p.cur.Type == TokenNumber {
			idx, err := strconv.Atoi(p.cur.Literal)
			if err != nil {
				return nil, zxerr.New(zxerr.Input, "invalid noun index %q", p.cur.Literal)
			}
			ref.Index = idx
			ref.HasIndex = true
			p.advance()
		}
		cmd.Nouns = append(cmd.Nouns, ref)
	}

	if p.cur.Type == TokenIdent {
		cmd.Verb = p.cur.Literal
		p.advance()
	}

	for p.cur.Type != TokenEOF {
		switch p.cur.Type {
		case TokenSwitchLong, TokenSwitchShort:
			cmd.Switches = append(cmd.Switches, Switch{
				Name: p.cur.Literal, Value: p.cur.SwitchValue, HasValue: p.cur.HasSwitchValue,
			})
		case TokenIdent, TokenNumber, TokenString:
			cmd.Args = append(cmd.Args, p.cur.Literal)
		case TokenIllegal:
			return nil, zxerr.New(zxerr.Input, "unexpected character %q", p.cur.Literal)
		default:
			return nil, zxerr.New(zxerr.Input, "unexpected token %s", p.cur.Type)
		}
		p.advance()
	}

	return cmd, nil
}

// Parse is a convenience wrapper constructing a Parser and calling Parse.
func Parse(line string) (*Command, error) {
	return NewParser(line).Parse()
}
