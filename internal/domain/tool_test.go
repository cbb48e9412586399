package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestToolRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		toolNames []string
		wantCount int
		getByName string
		wantFound bool
	}{
		{
			name:      "empty registry",
			toolNames: nil,
			wantCount: 0,
			getByName: "roll_dice",
			wantFound: false,
		},
		{
			name:      "single tool",
			toolNames: []string{"roll_dice"},
			wantCount: 1,
			getByName: "roll_dice",
			wantFound: true,
		},
		{
			name:      "multiple tools",
			toolNames: []string{"search_flights", "get_weather_forecast", "roll_dice"},
			wantCount: 3,
			getByName: "search_flights",
			wantFound: true,
		},
		{
			name:      "get non-existent tool",
			toolNames: []string{"roll_dice"},
			wantCount: 1,
			getByName: "search_hotels",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewToolRegistry()

			for _, name := range tt.toolNames {
				mock := NewMockTool(ctrl)
				mock.EXPECT().Name().Return(name).AnyTimes()
				registry.Register(mock)
			}

			assert.Len(t, registry.GetAll(), tt.wantCount)
			assert.Len(t, registry.Names(), tt.wantCount)

			_, found := registry.Get(tt.getByName)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestToolRegistryNamesSorted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewToolRegistry()
	for _, name := range []string{"roll_dice", "get_weather_forecast", "search_flights"} {
		mock := NewMockTool(ctrl)
		mock.EXPECT().Name().Return(name).AnyTimes()
		registry.Register(mock)
	}

	assert.Equal(t, []string{"get_weather_forecast", "roll_dice", "search_flights"}, registry.Names())

	all := registry.GetAll()
	assert.Equal(t, "get_weather_forecast", all[0].Name())
	assert.Equal(t, "search_flights", all[2].Name())
}

func TestToolRegistryReplacesOnDuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := NewMockTool(ctrl)
	first.EXPECT().Name().Return("roll_dice").AnyTimes()
	second := NewMockTool(ctrl)
	second.EXPECT().Name().Return("roll_dice").AnyTimes()

	registry := NewToolRegistry()
	registry.Register(first)
	registry.Register(second)

	assert.Len(t, registry.GetAll(), 1)
	got, ok := registry.Get("roll_dice")
	assert.True(t, ok)
	assert.Same(t, second, got)
}
