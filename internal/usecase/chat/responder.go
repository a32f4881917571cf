package chat

import (
	"fmt"
	"strings"
)

// Reply is the canned response produced by the responder.
type Reply struct {
	Response        string
	ActionTaken     string
	SuggestedAction string
}

// rule pairs a keyword set with its canned reply. Rules are evaluated in
// order; the first rule whose keyword appears in the lower-cased message wins.
type rule struct {
	keywords []string
	reply    Reply
}

var rules = []rule{
	{
		keywords: []string{"add", "create", "new"},
		reply: Reply{
			Response:        "I'll help you create a task. Use the task form in dashboard.",
			ActionTaken:     "suggest_create_task",
			SuggestedAction: "create_task_form",
		},
	},
	{
		keywords: []string{"show", "list", "tasks"},
		reply: Reply{
			Response:        "Your tasks are displayed in the dashboard.",
			ActionTaken:     "suggest_view_tasks",
			SuggestedAction: "navigate_to_dashboard",
		},
	},
	{
		keywords: []string{"complete", "done", "finish"},
		reply: Reply{
			Response:        "Click the checkbox next to any task to mark it complete.",
			ActionTaken:     "suggest_complete_task",
			SuggestedAction: "click_task_checkbox",
		},
	},
	{
		keywords: []string{"delete", "remove"},
		reply: Reply{
			Response:        "Use the delete button in the dashboard to remove tasks.",
			ActionTaken:     "suggest_delete_task",
			SuggestedAction: "click_delete_button",
		},
	},
	{
		keywords: []string{"hello", "hi", "help"},
		reply: Reply{
			Response:        "Hello! I'm TaskFlow assistant. Try: 'add task', 'show tasks', 'complete task'",
			ActionTaken:     "provide_assistance",
			SuggestedAction: "show_help_menu",
		},
	},
}

// Respond maps a free-text message to a canned reply using lower-cased
// substring matching, first match wins. Unmatched messages get an
// acknowledgement echoing the original text. Pure function, no side effects.
func Respond(message string) Reply {
	lowered := strings.ToLower(message)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				return r.reply
			}
		}
	}

	return Reply{
		Response:        fmt.Sprintf("I received: '%s'. Try: 'add task', 'show tasks', or 'help'", message),
		ActionTaken:     "acknowledge_message",
		SuggestedAction: "show_available_commands",
	}
}
