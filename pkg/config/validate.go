package config

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/arthur-debert/barrel/pkg/errors"
	"github.com/arthur-debert/barrel/pkg/matchers"
	"github.com/arthur-debert/barrel/pkg/paths"
	"github.com/arthur-debert/barrel/pkg/types"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the option values without touching the filesystem.
func (o *Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) {
			return errors.New(errors.ErrConfig, describeFieldErrors(fieldErrs)).
				WithDetail("fields", len(fieldErrs))
		}
		return errors.Wrap(err, errors.ErrConfig, "invalid configuration")
	}

	for _, patterns := range [][]string{o.IncludeGlob, o.IgnoreGlob} {
		if err := matchers.ValidatePatterns(patterns); err != nil {
			return err
		}
	}
	for _, entry := range o.DirSkip {
		if matchers.HasGlobSyntax(entry) {
			if err := matchers.ValidatePatterns([]string{entry}); err != nil {
				return err
			}
		}
	}
	return nil
}

// Resolve validates o and turns it into the immutable SelectionConfig the
// pipeline runs with. Relative directories resolve against workDir; both
// directories must exist.
func (o *Options) Resolve(fsys types.FS, workDir string) (types.SelectionConfig, error) {
	if err := o.Validate(); err != nil {
		return types.SelectionConfig{}, err
	}

	baseDir, err := resolveDir(fsys, workDir, o.Dir, "dir")
	if err != nil {
		return types.SelectionConfig{}, err
	}
	outDir, err := resolveDir(fsys, workDir, o.Out, "out")
	if err != nil {
		return types.SelectionConfig{}, err
	}

	return types.SelectionConfig{
		BaseDir:         baseDir,
		OutDir:          outDir,
		IncludePatterns: append([]string(nil), o.IncludeGlob...),
		ExcludePatterns: append([]string(nil), o.IgnoreGlob...),
		IncludeBin:      o.IncludeBin,
		TypesOnly:       o.TypesOnly,
		IsModule:        o.IsModule,
		SkipDirs:        append([]string(nil), o.DirSkip...),
		Extensions: types.Extensions{
			Module:       o.Extensions.Module,
			Component:    o.Extensions.Component,
			ModuleSuffix: o.Extensions.ModuleSuffix,
		},
	}, nil
}

func resolveDir(fsys types.FS, workDir, dir, flag string) (string, error) {
	dir, err := paths.Normalize(workDir, dir)
	if err != nil {
		return "", err
	}

	info, err := fsys.Stat(dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrConfig, "%s directory %s does not exist", flag, dir).
			WithPath(dir)
	}
	if !info.IsDir() {
		return "", errors.Newf(errors.ErrConfig, "%s %s is not a directory", flag, dir).
			WithPath(dir)
	}
	return dir, nil
}

func describeFieldErrors(fieldErrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", field, fe.Param())
	case "excludesall":
		return fmt.Sprintf("%s must not contain any of %q", field, fe.Param())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
