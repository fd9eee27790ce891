package lambda

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"unicode/utf8"
)

// Demo prints one example per function shape to w. The two random numbers
// come from rng and fall in [0, 100).
func Demo(w io.Writer, rng *rand.Rand) error {
	bw := bufio.NewWriter(w)

	stringLength := Function[string, int](utf8.RuneCountInString)
	fmt.Fprintf(bw, "Length of 'Hello': %d\n", stringLength.Apply("Hello"))
	fmt.Fprintf(bw, "Length of 'Lambda': %d\n", stringLength.Apply("Lambda"))

	isEven := Predicate[int](func(n int) bool { return n%2 == 0 })
	fmt.Fprintf(bw, "Is 4 even? %t\n", isEven.Test(4))
	fmt.Fprintf(bw, "Is 7 even? %t\n", isEven.Test(7))

	printMessage := Consumer[string](func(msg string) { fmt.Fprintf(bw, "Message: %s\n", msg) })
	printMessage.Accept("Hello, World!")
	printMessage.Accept("Lambda expressions are fun!")

	randomNumber := Supplier[int](func() int { return rng.IntN(100) })
	fmt.Fprintf(bw, "Random number: %d\n", randomNumber.Get())
	fmt.Fprintf(bw, "Random number: %d\n", randomNumber.Get())

	addNumbers := BinaryOperator[int](func(a, b int) int { return a + b })
	fmt.Fprintf(bw, "Sum of 5 and 3: %d\n", addNumbers.Apply(5, 3))
	fmt.Fprintf(bw, "Sum of 10 and 20: %d\n", addNumbers.Apply(10, 20))

	compareByLength := ComparingBy(stringLength)
	fmt.Fprintf(bw, "Comparison of 'apple' and 'banana': %d\n", compareByLength.Compare("apple", "banana"))
	fmt.Fprintf(bw, "Comparison of 'apple' and 'kiwi': %d\n", compareByLength.Compare("apple", "kiwi"))

	return bw.Flush()
}
