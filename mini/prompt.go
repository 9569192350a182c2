package mini

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/marquee-cli/marquee/color"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/query"
	"github.com/marquee-cli/marquee/style"
	"github.com/marquee-cli/marquee/util"
)

// bind is a fixed menu entry shown after the selectable items.
type bind struct {
	name string
}

func (b *bind) String() string {
	return b.name
}

func (b *bind) eq(other *bind) bool {
	return b == other
}

var (
	quit          = &bind{"Quit"}
	back          = &bind{"Back"}
	search        = &bind{"Search"}
	showFavorites = &bind{"Favorites"}
	watch         = &bind{"Watch trailer"}
	addFavorite   = &bind{"Add to favorites"}
	delFavorite   = &bind{"Remove from favorites"}
)

type input struct {
	value string
}

func title(t string) {
	fmt.Println(style.Title(t))
}

func fail(t string) {
	fmt.Println(style.Fg(color.Red)(icon.Get(icon.Fail) + " " + t))
}

func progress(t string) (eraser func()) {
	return util.PrintErasable(style.Fg(color.Purple)(icon.Get(icon.Progress)) + " " + t)
}

// menu asks to pick one of items or one of binds. Exactly one of the
// returned bind and item is meaningful: the bind is nil when an item was
// picked.
func menu[T any](items []T, label func(T) string, binds ...*bind) (*bind, T, error) {
	var zero T

	options := make([]string, 0, len(items)+len(binds))
	for i, item := range items {
		options = append(options, fmt.Sprintf("%d. %s", i+1, style.Truncate(truncateAt-4)(label(item))))
	}
	for _, b := range binds {
		options = append(options, b.String())
	}

	prompt := &survey.Select{
		Message:  ">",
		Options:  options,
		PageSize: 10,
	}

	var idx int
	if err := survey.AskOne(prompt, &idx); err != nil {
		return nil, zero, err
	}

	if idx >= len(items) {
		return binds[idx-len(items)], zero, nil
	}

	return nil, items[idx], nil
}

// getInput reads a line accepted by validate. Previous queries are offered
// as suggestions.
func getInput(validate func(string) bool) (*input, error) {
	prompt := &survey.Input{
		Message: ">",
		Suggest: query.SuggestMany,
	}

	var value string
	err := survey.AskOne(prompt, &value, survey.WithValidator(func(ans any) error {
		s, _ := ans.(string)
		if !validate(strings.TrimSpace(s)) {
			return fmt.Errorf("invalid input")
		}
		return nil
	}))
	if err != nil {
		return nil, err
	}

	return &input{value: strings.TrimSpace(value)}, nil
}
