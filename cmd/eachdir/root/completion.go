// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package root

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"text/template"

	cmdtemplate "github.com/matt-FFFFFF/eachdir/internal/template"
	"github.com/urfave/cli/v3"
)

// ErrUnknownShell is returned for a --completion value that has no script.
var ErrUnknownShell = errors.New("unknown shell")

//go:embed scripts/*.tmpl
var scripts embed.FS

// Shells lists the shells a completion script can be generated for.
func Shells() []string {
	return []string{"bash", "fish", "pwsh", "zsh"}
}

type argKind string

const (
	argNone      argKind = ""
	argDirectory argKind = "directory"
	argFile      argKind = "file"
	argMode      argKind = "mode"
	argShell     argKind = "shell"
	argNumber    argKind = "number"
)

// shellFlag is one flag as the shell templates see it.
type shellFlag struct {
	Forms      []string // -d --directory
	Usage      string
	Kind       argKind
	Repeatable bool
}

type completionData struct {
	Name   string
	Flags  []shellFlag
	Modes  []string
	Shells []string
}

// Completion renders the completion script for shell.
// Fish comes from urfave/cli, the other shells from the embedded templates.
func Completion(cmd *cli.Command, shell string) (string, error) {
	if shell == "fish" {
		return cmd.Root().ToFishCompletion()
	}

	if !slices.Contains(Shells(), shell) {
		return "", fmt.Errorf("%w %q, expected one of %s", ErrUnknownShell, shell, strings.Join(Shells(), ", "))
	}

	t, err := template.New(shell+".tmpl").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(scripts, "scripts/"+shell+".tmpl")
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, newCompletionData(cmd.Root())); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func newCompletionData(cmd *cli.Command) completionData {
	data := completionData{
		Name:   cmd.Name,
		Modes:  cmdtemplate.Modes(),
		Shells: Shells(),
	}

	for _, f := range cmd.Flags {
		names := f.Names()
		if len(names) == 0 {
			continue
		}

		cf := shellFlag{
			Kind:       kindOf(names[0]),
			Repeatable: names[0] == debugFlag,
		}

		if d, ok := f.(cli.DocGenerationFlag); ok {
			cf.Usage = strings.ReplaceAll(d.GetUsage(), "`", "")
		}

		for _, n := range names {
			cf.Forms = append(cf.Forms, flagForm(n))
		}

		data.Flags = append(data.Flags, cf)
	}

	return data
}

func kindOf(name string) argKind {
	switch name {
	case directoryFlag:
		return argDirectory
	case configFlag:
		return argFile
	case modeFlag:
		return argMode
	case completionFlag:
		return argShell
	case threadsFlag:
		return argNumber
	default:
		return argNone
	}
}

func flagForm(name string) string {
	if len(name) == 1 {
		return "-" + name
	}

	return "--" + name
}

// AllForms returns every form of every flag.
func (d completionData) AllForms() []string {
	var forms []string

	for _, f := range d.Flags {
		forms = append(forms, f.Forms...)
	}

	return forms
}

// ValueForms returns every form of the flags that take a value.
func (d completionData) ValueForms() []string {
	var forms []string

	for _, f := range d.Flags {
		if f.Kind != argNone {
			forms = append(forms, f.Forms...)
		}
	}

	return forms
}

// Case returns the flag forms of the given kind joined as a shell case pattern.
func (d completionData) Case(kind string) string {
	var forms []string

	for _, f := range d.Flags {
		if f.Kind == argKind(kind) {
			forms = append(forms, f.Forms...)
		}
	}

	return strings.Join(forms, "|")
}

var zshEscaper = strings.NewReplacer(`'`, `'\''`, `[`, `\[`, `]`, `\]`, `:`, `\:`)

// ZshSpec renders the _arguments specification of f.
func (d completionData) ZshSpec(f shellFlag) string {
	desc := "[" + zshEscaper.Replace(f.Usage) + "]"

	var action string

	switch f.Kind {
	case argDirectory:
		action = ":directory:_files -/"
	case argFile:
		action = ":file:_files"
	case argMode:
		action = ":mode:(" + strings.Join(d.Modes, " ") + ")"
	case argShell:
		action = ":shell:(" + strings.Join(d.Shells, " ") + ")"
	case argNumber:
		action = ":number: "
	case argNone:
	}

	if f.Repeatable {
		return "'*" + f.Forms[0] + desc + "'"
	}

	exclusion := "(" + strings.Join(f.Forms, " ") + ")"

	if len(f.Forms) == 1 {
		return "'" + exclusion + f.Forms[0] + desc + action + "'"
	}

	return "'" + exclusion + "'{" + strings.Join(f.Forms, ",") + "}'" + desc + action + "'"
}
