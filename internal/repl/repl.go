// Package repl implements the interactive command loop: tokenizing input,
// dispatching to the command handlers and translating recoverable errors
// into the fixed user-facing messages.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-contactbook/internal/book"
	"github.com/tartampluch/go-contactbook/internal/commands"
	"github.com/tartampluch/go-contactbook/internal/config"
)

// REPL reads commands from In and writes responses to Out. One command is
// processed fully before the next is read.
type REPL struct {
	In      io.Reader
	Out     io.Writer
	Handler *commands.Handler
	Lang    string

	I18nBundle         *i18n.Bundle
	Localizer          *i18n.Localizer
	SupportedLanguages []string

	// OnMutate runs after every successful state-changing command. The
	// feed server hooks in here to refresh its calendar cache.
	OnMutate func()
}

// New wires a REPL around the handler and loads the translation bundle for
// lang. The handler's Translate hook is pointed at the REPL's localizer.
func New(in io.Reader, out io.Writer, handler *commands.Handler, lang string) *REPL {
	r := &REPL{
		In:      in,
		Out:     out,
		Handler: handler,
		Lang:    lang,
	}
	r.SetupI18n()
	handler.Translate = r.GetMsg
	return r
}

// ParseInput splits a raw line into a lowercased command and its arguments.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Run executes the command loop until close/exit, end of input or context
// cancellation.
func (r *REPL) Run(ctx context.Context) error {
	log := slog.With(config.LogKeyComponent, config.CompRepl)

	r.println(r.GetMsg(config.TKeyWelcome))

	scanner := bufio.NewScanner(r.In)
	for {
		if ctx.Err() != nil {
			log.Info(config.MsgCtxCancel)
			return ctx.Err()
		}

		r.print(r.GetMsg(config.TKeyPrompt))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("%s: %w", config.ErrReadInput, err)
			}
			// End of input behaves like exit.
			r.println(r.GetMsg(config.TKeyGoodbye))
			log.Info(config.MsgReplStopped)
			return nil
		}

		cmd, args := ParseInput(scanner.Text())
		if cmd == "" {
			continue
		}
		if cmd == config.CmdClose || cmd == config.CmdExit {
			r.println(r.GetMsg(config.TKeyGoodbye))
			log.Info(config.MsgReplStopped)
			return nil
		}

		log.Debug(config.MsgAppStarting, config.LogKeyCommand, cmd)
		out, err := r.dispatch(cmd, args)
		if err != nil {
			r.println(r.translateErr(err))
			continue
		}
		if out != "" {
			r.println(out)
		}
	}
}

// dispatch routes a parsed command to its handler. Commands that mutate the
// book trigger OnMutate on success.
func (r *REPL) dispatch(cmd string, args []string) (string, error) {
	h := r.Handler
	switch cmd {
	case config.CmdHello:
		return r.GetMsg(config.TKeyHowHelp), nil
	case config.CmdHelp:
		return r.GetMsg(config.TKeyHelp), nil
	case config.CmdAdd:
		return r.mutating(h.Add(args))
	case config.CmdChange:
		return r.mutating(h.Change(args))
	case config.CmdPhone:
		return h.Phone(args)
	case config.CmdAll:
		return h.All()
	case config.CmdAddBirthday:
		return r.mutating(h.AddBirthday(args))
	case config.CmdShowBirthday:
		return h.ShowBirthday(args)
	case config.CmdBirthdays:
		return h.Birthdays()
	case config.CmdExport:
		return h.Export(args)
	case config.CmdImport:
		return r.mutating(h.Import(args))
	default:
		return r.GetMsg(config.TKeyInvalidCommand), nil
	}
}

func (r *REPL) mutating(out string, err error) (string, error) {
	if err == nil && r.OnMutate != nil {
		r.OnMutate()
	}
	return out, err
}

// translateErr maps the core's recoverable error kinds to the fixed
// user-facing strings.
func (r *REPL) translateErr(err error) string {
	switch {
	case errors.Is(err, book.ErrValidation):
		return r.GetMsg(config.TKeyErrArgs)
	case errors.Is(err, book.ErrNotFound):
		return r.GetMsg(config.TKeyErrNotFound)
	case errors.Is(err, book.ErrArgument):
		return r.GetMsg(config.TKeyErrUserName)
	default:
		return err.Error()
	}
}

func (r *REPL) print(s string) {
	fmt.Fprint(r.Out, s)
}

func (r *REPL) println(s string) {
	fmt.Fprintln(r.Out, s)
}
