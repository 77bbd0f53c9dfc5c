package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandListFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "space separated lists",
			args: []string{"reroute", "--mocks", "a.o", "b.o", "--objects", "c.o", "d.o"},
			want: []string{"reroute", "--mocks", "a.o", "--mocks", "b.o", "--objects", "c.o", "--objects", "d.o"},
		},
		{
			name: "single values untouched",
			args: []string{"reroute", "--mocks", "a.o", "--objects", "c.o"},
			want: []string{"reroute", "--mocks", "a.o", "--objects", "c.o"},
		},
		{
			name: "other flags end the list",
			args: []string{"generate", "--headers", "A.h", "B.h", "--output", "out"},
			want: []string{"generate", "--headers", "A.h", "--headers", "B.h", "--output", "out"},
		},
		{
			name: "positional args outside lists",
			args: []string{"rename-map", "A.cpp", "B.cpp", "--output", "map.txt"},
			want: []string{"rename-map", "A.cpp", "B.cpp", "--output", "map.txt"},
		},
		{
			name: "equals form starts a list",
			args: []string{"reroute", "--mocks=a.o", "b.o", "--objects=c.o,d.o", "e.o"},
			want: []string{"reroute", "--mocks=a.o", "--mocks", "b.o", "--objects=c.o,d.o", "--objects", "e.o"},
		},
		{
			name: "equals form of another flag",
			args: []string{"generate", "--output=out", "A.h"},
			want: []string{"generate", "--output=out", "A.h"},
		},
		{
			name: "double dash stops expansion",
			args: []string{"reroute", "--mocks", "a.o", "--", "b.o"},
			want: []string{"reroute", "--mocks", "a.o", "--", "b.o"},
		},
		{
			name: "empty",
			args: []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expandListFlags(tt.args, mocksFlagName, objectsFlagName, headersFlagName)
			assert.Equal(t, tt.want, got)
		})
	}
}
