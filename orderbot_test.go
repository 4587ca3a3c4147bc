package orderbot_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/orderbot"
	"github.com/aretw0/orderbot/internal/testutils"
	"github.com/aretw0/orderbot/pkg/domain"
	"github.com/aretw0/orderbot/pkg/dsl"
	"github.com/aretw0/orderbot/pkg/ports"
)

func TestNew_UnknownFlow(t *testing.T) {
	_, err := orderbot.New(orderbot.WithFlow("sushi"), orderbot.WithMenu(testutils.NewStaticMenu("Salami")))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGraphConfig)
}

func TestNew_NegativeMaxAttempts(t *testing.T) {
	_, err := orderbot.New(orderbot.WithMaxAttempts(-1), orderbot.WithMenu(testutils.NewStaticMenu("Salami")))
	assert.Error(t, err)
}

func TestNew_DefaultsToPizzaFlow(t *testing.T) {
	eng, err := orderbot.New(orderbot.WithMenu(testutils.NewStaticMenu("Salami")))
	require.NoError(t, err)
	assert.Equal(t, orderbot.FlowPizza, eng.Flow())
	assert.Empty(t, eng.Warnings())
}

func TestEngine_Run_EndToEnd(t *testing.T) {
	menu := testutils.NewStaticMenu("Margherita", "Salami")
	io := testutils.NewScriptedIO("Alice", "Margherita")

	var visited []domain.StepID
	eng, err := orderbot.New(
		orderbot.WithMenu(menu),
		orderbot.WithIOHandler(io),
		orderbot.WithLifecycleHooks(domain.LifecycleHooks{
			OnStepEnter: func(ctx context.Context, e *domain.StepEvent) {
				visited = append(visited, e.StepID)
			},
		}),
	)
	require.NoError(t, err)

	final, err := eng.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Hello, Alice!"}, final.Output)
	assert.Equal(t, []domain.StepID{"ask_user_name", "greeting", "ask_item_name"}, visited)
	assert.Empty(t, io.LogsContaining("invalid"))
	assert.Equal(t, 1, menu.Calls)
}

func TestEngine_Inspect(t *testing.T) {
	eng, err := orderbot.New(
		orderbot.WithFlow(orderbot.FlowOrder),
		orderbot.WithMenu(testutils.NewStaticMenu("Salami")),
	)
	require.NoError(t, err)

	var ids []domain.StepID
	for _, n := range eng.Inspect() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, domain.Start, ids[0])
	assert.Contains(t, ids, domain.StepID("ask_quantity"))
	assert.Contains(t, ids, domain.StepID("summary"))
}

func TestEngine_RunsCustomGraph(t *testing.T) {
	var toGreeting dsl.Selector = func(context.Context, ports.IOHandler, *domain.State) (domain.Target, error) {
		return domain.Goto("hello"), nil
	}
	var hello dsl.Action = func(ctx context.Context, io ports.IOHandler, s *domain.State) error {
		s.Append("Hello from a custom graph!")
		return nil
	}

	b := dsl.New("custom")
	b.Entry("Always", toGreeting, "hello")
	b.Add("hello").Emit("Says hello").Do(hello).Terminal()

	g, err := b.Build()
	require.NoError(t, err)

	eng, err := orderbot.New(orderbot.WithGraph(g), orderbot.WithIOHandler(testutils.NewScriptedIO()))
	require.NoError(t, err)
	assert.Equal(t, "custom", eng.Flow())

	final, err := eng.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello from a custom graph!"}, final.Output)
}
