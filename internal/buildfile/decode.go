// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package buildfile

import (
	"fmt"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/drushgo/internal/drush"
)

// Property is an evaluated property block.
type Property struct {
	Name     string
	Value    string
	Override bool
}

type hclProperty struct {
	Value    string  `hcl:"value"`
	Override *string `hcl:"override,optional"`
}

// Loosely typed attributes are decoded as strings: HCL converts bools and
// numbers, and drush.ParseToggle applies the yes/true/1 mapping.
type hclTask struct {
	Command        *string `hcl:"command,optional"`
	Bin            *string `hcl:"bin,optional"`
	Alias          *string `hcl:"alias,optional"`
	Root           *string `hcl:"root,optional"`
	URI            *string `hcl:"uri,optional"`
	Config         *string `hcl:"config,optional"`
	AliasPath      *string `hcl:"alias_path,optional"`
	Assume         *string `hcl:"assume,optional"`
	Color          *string `hcl:"color,optional"`
	Simulate       *string `hcl:"simulate,optional"`
	Pipe           *string `hcl:"pipe,optional"`
	Verbose        *string `hcl:"verbose,optional"`
	Debug          *string `hcl:"debug,optional"`
	Quiet          *string `hcl:"quiet,optional"`
	Backend        *string `hcl:"backend,optional"`
	Druplicon      *string `hcl:"druplicon,optional"`
	ShowPasswords  *string `hcl:"show_passwords,optional"`
	Version        *string `hcl:"version,optional"`
	ShowInvoke     *string `hcl:"show_invoke,optional"`
	Xh             *string `hcl:"xh,optional"`
	User           *string `hcl:"user,optional"`
	Strict         *string `hcl:"strict,optional"`
	BackupLocation *string `hcl:"backup_location,optional"`

	HaltOnError    *string `hcl:"halt_on_error,optional"`
	ReturnProperty *string `hcl:"return_property,optional"`
	ReturnGlue     *string `hcl:"return_glue,optional"`
	StatusProperty *string `hcl:"status_property,optional"`

	Dir     *string `hcl:"dir,optional"`
	Spawn   *string `hcl:"spawn,optional"`
	Output  *string `hcl:"output,optional"`
	Error   *string `hcl:"error,optional"`
	Pretend *string `hcl:"pretend,optional"`

	Options []*hclOption `hcl:"option,block"`
	Params  []*hclParam  `hcl:"param,block"`
}

type hclOption struct {
	Name  string  `hcl:"name,label"`
	Value *string `hcl:"value,optional"`
}

type hclParam struct {
	Value  string  `hcl:"value"`
	Escape *string `hcl:"escape,optional"`
	Quote  *string `hcl:"quote,optional"`
}

// Option names end up on the command line verbatim.
var optionName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// Property evaluates a property block.
func (b *Block) Property(ectx *hcl.EvalContext) (*Property, error) {
	if b.Kind != KindProperty {
		return nil, fmt.Errorf("%s %q is not a property block", b.Kind, b.Name)
	}
	var raw hclProperty
	if diags := gohcl.DecodeBody(b.body, ectx, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode property %q in %s: %w", b.Name, b.File, diags)
	}
	return &Property{
		Name:     b.Name,
		Value:    raw.Value,
		Override: drush.ParseBool(str(raw.Override)),
	}, nil
}

// Task evaluates a drush block into a ready-to-run task. Defaults from the
// property store are not applied here.
func (b *Block) Task(ectx *hcl.EvalContext) (*drush.Task, error) {
	if b.Kind != KindTask {
		return nil, fmt.Errorf("%s %q is not a drush block", b.Kind, b.Name)
	}
	var raw hclTask
	if diags := gohcl.DecodeBody(b.body, ectx, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode drush %q in %s: %w", b.Name, b.File, diags)
	}

	task := &drush.Task{
		Name: b.Name,
		Command: drush.Command{
			Bin:   str(raw.Bin),
			Alias: str(raw.Alias),
			Name:  str(raw.Command),
			Settings: drush.Settings{
				Root:           str(raw.Root),
				URI:            str(raw.URI),
				Config:         str(raw.Config),
				AliasPath:      str(raw.AliasPath),
				Color:          toggle(raw.Color),
				Assume:         toggle(raw.Assume),
				Simulate:       toggle(raw.Simulate),
				Pipe:           toggle(raw.Pipe),
				Verbose:        toggle(raw.Verbose),
				Debug:          toggle(raw.Debug),
				Quiet:          toggle(raw.Quiet),
				Backend:        toggle(raw.Backend),
				Druplicon:      toggle(raw.Druplicon),
				ShowPasswords:  toggle(raw.ShowPasswords),
				Version:        toggle(raw.Version),
				ShowInvoke:     toggle(raw.ShowInvoke),
				Xh:             toggle(raw.Xh),
				User:           str(raw.User),
				Strict:         str(raw.Strict),
				BackupLocation: str(raw.BackupLocation),
			},
		},
		Exec: drush.ExecOptions{
			Dir:    str(raw.Dir),
			Output: str(raw.Output),
			Error:  str(raw.Error),
			Spawn:  drush.ParseBool(str(raw.Spawn)),
		},
		Report: drush.ReportOptions{
			HaltOnError:    toggle(raw.HaltOnError).Or(true),
			ReturnProperty: str(raw.ReturnProperty),
			ReturnGlue:     str(raw.ReturnGlue),
		},
		Pretend:        drush.ParseBool(str(raw.Pretend)),
		StatusProperty: str(raw.StatusProperty),
	}

	for _, o := range raw.Options {
		if !optionName.MatchString(o.Name) {
			return nil, fmt.Errorf("drush %q in %s: invalid option name %q", b.Name, b.File, o.Name)
		}
		task.Command.Options = append(task.Command.Options, drush.Option{Name: o.Name, Value: str(o.Value)})
	}
	for _, p := range raw.Params {
		// Unlike drush.NewParam, build-file params are bare unless asked.
		task.Command.Params = append(task.Command.Params, drush.Param{
			Value:  p.Value,
			Escape: toggle(p.Escape).Or(false),
			Quote:  toggle(p.Quote).Or(false),
		})
	}
	return task, nil
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toggle(s *string) drush.Toggle {
	return drush.ParseToggle(str(s))
}
