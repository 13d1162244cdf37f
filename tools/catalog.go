// Package tools holds the fixed tool catalog the model may invoke and the
// executor that turns a tool call into a command suggestion.
//
// THE EXECUTOR HAS NO ACCESS TO USER DATA. Nothing in this package accepts
// a database handle, a contact record, or any other capability that could
// read persisted data. Tool execution only translates a tool call into an
// inert CLI command string plus an explanation; the CLI decides later, and
// elsewhere, whether to run it. Keep it that way: any change that threads a
// data store through here breaks the firewall and must be rejected.
package tools

import "github.com/jnun/contactcmd-sub001/model"

// Catalog returns the fixed set of tools exposed to the model. Names and
// required-parameter sets are part of the prompt contract; changing them
// changes model behavior, so treat this list as versioned.
func Catalog() []model.Tool {
	return []model.Tool{
		searchTool(),
		listTool(),
		showTool(),
		messagesTool(),
		recentTool(),
		browseTool(),
	}
}

func searchTool() model.Tool {
	return model.Tool{
		Name:        "suggest_search",
		Description: "Search contacts. Use location for cities/states, organization for companies, name for people, query for general terms.",
		Parameters: []model.ToolParam{
			model.OptionalParam("query", "General search terms (searches all fields)", "string"),
			model.OptionalParam("name", "Person's name", "string"),
			model.OptionalParam("location", "City or state (e.g., 'miami', 'texas')", "string"),
			model.OptionalParam("organization", "Company name (e.g., 'google', 'att')", "string"),
		},
	}
}

func listTool() model.Tool {
	return model.Tool{
		Name:        "suggest_list",
		Description: "Suggest the list command to show all contacts.",
	}
}

func showTool() model.Tool {
	return model.Tool{
		Name:        "suggest_show",
		Description: "Suggest showing a specific contact's details.",
		Parameters: []model.ToolParam{
			model.RequiredParam("name", "Contact name to show", "string"),
		},
	}
}

func messagesTool() model.Tool {
	return model.Tool{
		Name:        "suggest_messages",
		Description: "Suggest viewing messages with a contact.",
		Parameters: []model.ToolParam{
			model.RequiredParam("contact", "Contact name to view messages with", "string"),
		},
	}
}

func recentTool() model.Tool {
	return model.Tool{
		Name:        "suggest_recent",
		Description: "Suggest viewing recently messaged contacts (iMessage/SMS).",
		Parameters: []model.ToolParam{
			model.OptionalParam("days", "Number of days to look back (default: 7)", "integer"),
		},
	}
}

func browseTool() model.Tool {
	return model.Tool{
		Name:        "suggest_browse",
		Description: "Suggest browsing previous search results in TUI.",
	}
}
