// Package flow declares the order dialog: its steps, its transition
// selectors and the step tables of each flow variant.
package flow

import (
	"fmt"
	"strings"

	"github.com/aretw0/orderbot/internal/runtime"
	"github.com/aretw0/orderbot/pkg/domain"
	"github.com/aretw0/orderbot/pkg/dsl"
	"github.com/aretw0/orderbot/pkg/ports"
)

// Step ids shared by all variants.
const (
	StepAskUserName domain.StepID = "ask_user_name"
	StepGreeting    domain.StepID = "greeting"
	StepAskItemName domain.StepID = "ask_item_name"
	StepAskQuantity domain.StepID = "ask_quantity"
	StepAddItem     domain.StepID = "add_item"
	StepAskAnother  domain.StepID = "ask_another"
	StepSummary     domain.StepID = "summary"
)

// Prompts shown to the user.
const (
	QuestionUserName = "ChatBot: What's your name?"
	QuestionItemName = "ChatBot: What pizza do you want to order?"
	QuestionQuantity = "ChatBot: How many do you want?"
	QuestionAnother  = "ChatBot: Anything else? (yes/no)"
)

// Variant selects one of the built-in step tables.
type Variant string

const (
	// VariantPizza collects a name and one valid pizza, then ends.
	VariantPizza Variant = "pizza"
	// VariantOrder also collects quantities and loops until the user is done.
	VariantOrder Variant = "order"
)

// Variants lists the built-in variants.
func Variants() []Variant {
	return []Variant{VariantPizza, VariantOrder}
}

// ParseVariant resolves a variant name, case-insensitively.
func ParseVariant(name string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(name)))
	switch v {
	case VariantPizza, VariantOrder:
		return v, nil
	case "":
		return VariantPizza, nil
	}
	return "", fmt.Errorf("unknown flow %q (want one of %v)", name, Variants())
}

// Deps are the collaborators bound into the graph at construction.
type Deps struct {
	Menu        ports.MenuService
	Hooks       domain.LifecycleHooks
	MaxAttempts int
}

// Build compiles the step table of variant.
func Build(v Variant, deps Deps) (*runtime.Graph, error) {
	if deps.Menu == nil {
		return nil, &domain.GraphConfigError{Problems: []string{"no menu service provided"}}
	}
	policy := Policy{MaxAttempts: deps.MaxAttempts, Hooks: deps.Hooks}

	b := dsl.New(string(v))
	b.Entry("RequireUserName", RequireUserName(StepAskUserName, StepGreeting), StepAskUserName, StepGreeting)

	b.Add(StepAskUserName).
		Ask("Collects the user name").
		Do(AskText(domain.FieldUserName, QuestionUserName)).
		Go(StepGreeting)

	b.Add(StepGreeting).
		Emit("Greets the user by name").
		Do(Greeting()).
		Go(StepAskItemName)

	item := b.Add(StepAskItemName).
		Ask("Collects an item name").
		Do(AskText(domain.FieldItemName, QuestionItemName))

	switch v {
	case VariantPizza:
		item.Branch("ValidateItem", ValidateItem(ItemCheck{
			Menu:     deps.Menu,
			Collect:  StepAskItemName,
			Accepted: domain.Terminate(),
			Label:    "Pizza",
			Policy:   policy,
		}), StepAskItemName, domain.End)

	case VariantOrder:
		item.Branch("ValidateItem", ValidateItem(ItemCheck{
			Menu:     deps.Menu,
			Collect:  StepAskItemName,
			Accepted: domain.Goto(StepAskQuantity),
			Label:    "Pizza",
			Policy:   policy,
		}), StepAskItemName, StepAskQuantity)

		b.Add(StepAskQuantity).
			Ask("Collects the quantity of the current item").
			Do(AskQuantity(QuestionQuantity)).
			Branch("ValidateQuantity", ValidateQuantity(StepAskQuantity, StepAddItem, policy), StepAskQuantity, StepAddItem)

		b.Add(StepAddItem).
			Logic("Adds the current item to the order").
			Do(AddItem()).
			Go(StepAskAnother)

		b.Add(StepAskAnother).
			Ask("Asks whether to order more").
			Do(AskText(domain.FieldAnother, QuestionAnother)).
			Branch("AnotherSelector", AnotherSelector(StepAskItemName, StepSummary, StepAskAnother),
				StepAskItemName, StepSummary, StepAskAnother)

		b.Add(StepSummary).
			Emit("Summarizes the order").
			Do(Summary()).
			Terminal()

	default:
		return nil, &domain.GraphConfigError{Problems: []string{fmt.Sprintf("unknown flow %q", v)}}
	}

	return b.Build()
}
