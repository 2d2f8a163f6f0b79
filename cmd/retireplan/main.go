// Command retireplan projects a retirement portfolio year by year through age 90.
package main

func main() {
	Execute()
}
