package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		want     cliFlags
		wantArgs int
		wantErr  bool
	}{
		{
			name: "long flags",
			args: []string{"mlx2html", "--input-file", "in.html", "--output-file", "out.html", "--debug"},
			want: cliFlags{inputFile: "in.html", outputFile: "out.html", debug: true},
		},
		{
			name: "short flags",
			args: []string{"mlx2html", "-i", "in.html", "-o", "out.html", "-d"},
			want: cliFlags{inputFile: "in.html", outputFile: "out.html", debug: true},
		},
		{
			name:     "positional input",
			args:     []string{"mlx2html", "in.html"},
			want:     cliFlags{},
			wantArgs: 1,
		},
		{
			name: "config and mathjax",
			args: []string{"mlx2html", "-c", "conf.yml", "--mathjax-url", "https://x/mj.js", "-i", "in.html"},
			want: cliFlags{inputFile: "in.html", configFile: "conf.yml", mathJaxURL: "https://x/mj.js"},
		},
		{
			name: "version",
			args: []string{"mlx2html", "--version"},
			want: cliFlags{version: true},
		},
		{
			name:    "unknown flag",
			args:    []string{"mlx2html", "--nope"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, args, err := parseFlags(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if *got != tt.want {
				t.Errorf("parseFlags() = %+v, want %+v", *got, tt.want)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("positional args = %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}
