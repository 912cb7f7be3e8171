package main

import (
	"fmt"
	"os"

	"github.com/AYColumbia/overlaykit/js"
	"github.com/AYColumbia/overlaykit/markup"
	"github.com/AYColumbia/overlaykit/ui"
)

// demoMarkup is the option list the demo window is built from.
const demoMarkup = `
<select>
  <optgroup label="Fruit">
    <option value="apple" data-description="Crisp and sweet">Apple</option>
    <option value="banana">Banana</option>
    <option value="durian" disabled>Durian</option>
  </optgroup>
  <optgroup label="Vegetables">
    <option value="carrot">Carrot</option>
    <option value="kale" data-description="An acquired taste">Kale</option>
  </optgroup>
</select>`

func main() {
	fmt.Println("overlaykit - overlay and selection toolkit demo")

	// Check if we should run in headless mode for testing
	if len(os.Args) > 1 && os.Args[1] == "--headless" {
		fmt.Println("Running in headless mode...")
		return
	}

	options, err := markup.ParseOptions(demoMarkup)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse demo options: %v\n", err)
		os.Exit(1)
	}

	host := ui.NewHost(options)

	// Expose the controllers to a script runtime sharing the host's loop,
	// so scripts can drive the same selection the window shows.
	runtime := js.NewRuntime(host.Loop())
	runtime.BindSelector("list", host.Selector())
	runtime.BindPopup("panel", host.Popup())
	if _, err := runtime.Execute(`console.log("script bridge ready; options:", list.filteredOptions().length)`); err != nil {
		fmt.Fprintf(os.Stderr, "Script bridge error: %v\n", err)
	}

	host.Run()
}
