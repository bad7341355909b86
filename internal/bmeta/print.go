package bmeta

import "fmt"

const defaultBuildMeta = "N/A"

// Print распечатывает версию, дату и коммит сборки.
// Пустые значения (сборка без ldflags) заменяются заглушкой.
func Print(version, date, commit string) {
	fmt.Printf("Build version: %s\n", orDefault(version)) //nolint:forbidigo
	fmt.Printf("Build date: %s\n", orDefault(date))       //nolint:forbidigo
	fmt.Printf("Build commit: %s\n", orDefault(commit))   //nolint:forbidigo
}

func orDefault(v string) string {
	if v == "" {
		return defaultBuildMeta
	}
	return v
}
