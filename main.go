package main

import "github.com/trush081/simple-expense-tracker/cmd"

func main() {
	cmd.Execute()
}
