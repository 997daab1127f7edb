package command

import (
	"fmt"

	"github.com/atomicstack/popup-pick/internal/keys"
)

const (
	GroupGeneral    = "-- General --"
	GroupNavigation = "-- Navigation --"
	GroupPicking    = "-- Picking --"
)

func name(title string, label string) string {
	return fmt.Sprintf("%s [%s]", title, label)
}

func Scroll(k keys.Map) Text {
	return Text{
		Name:  name("Scroll", keys.Label(k.MoveUp, k.MoveDown)),
		Desc:  "scroll up or down in the focused view",
		Group: GroupNavigation,
	}
}

func ClosePopup(k keys.Map) Text {
	return Text{
		Name:  name("Close", keys.Label(k.ExitPopup)),
		Desc:  "close the popup",
		Group: GroupGeneral,
	}
}

func OpenHelp(k keys.Map) Text {
	return Text{
		Name:  name("Help", keys.Label(k.OpenHelp)),
		Desc:  "open this help screen",
		Group: GroupGeneral,
	}
}

func Quit(k keys.Map) Text {
	return Text{
		Name:  name("Quit", keys.Label(k.Quit)),
		Desc:  "quit without picking anything",
		Group: GroupGeneral,
	}
}

func ForceQuit(k keys.Map) Text {
	return Text{
		Name:  name("Quit", keys.Label(k.ForceQuit)),
		Desc:  "quit immediately, from anywhere",
		Group: GroupGeneral,
	}.Hidden()
}

func Move(k keys.Map) Text {
	return Text{
		Name:  name("Move", keys.Label(k.MoveUp, k.MoveDown)),
		Desc:  "select the previous or next item",
		Group: GroupNavigation,
	}
}

func Page(k keys.Map) Text {
	return Text{
		Name:  name("Page", keys.Label(k.PageUp, k.PageDown)),
		Desc:  "move the selection by one screen",
		Group: GroupNavigation,
	}
}

func Jump(k keys.Map) Text {
	return Text{
		Name:  name("Jump", keys.Label(k.Home, k.End)),
		Desc:  "select the first or last item",
		Group: GroupNavigation,
	}
}

func Pick(k keys.Map) Text {
	return Text{
		Name:  name("Pick", keys.Label(k.Select)),
		Desc:  "print the selected item and exit",
		Group: GroupPicking,
	}
}

func Filter(k keys.Map) Text {
	return Text{
		Name:  name("Filter", keys.Label(k.Filter)),
		Desc:  "type to narrow the list; enter keeps the filter",
		Group: GroupPicking,
	}
}

func ClearFilter(k keys.Map) Text {
	return Text{
		Name:  name("Clear filter", keys.Label(k.ExitPopup)),
		Desc:  "drop the filter and show every item",
		Group: GroupPicking,
	}
}
