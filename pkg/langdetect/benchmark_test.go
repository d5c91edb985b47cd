package langdetect

import "testing"

func BenchmarkGuessPattern(b *testing.B) {
	lines := []string{"package main", "", `import "fmt"`, "", "func main() {}"}
	for b.Loop() {
		Guess(lines)
	}
}

func BenchmarkGuessClassifier(b *testing.B) {
	lines := []string{"class Greeter", "  def hi", "    puts 'hi'", "  end", "end"}
	for b.Loop() {
		Guess(lines)
	}
}
