package mcp

import (
	"context"

	"github.com/mergington/activities/internal/activities"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ActivityListInput represents the MCP tool input for catalog listing.
type ActivityListInput struct{}

// ActivityEntry represents one catalog entry in tool output.
type ActivityEntry struct {
	Name            string   `json:"name" jsonschema:"activity name"`
	Description     string   `json:"description" jsonschema:"activity description"`
	Schedule        string   `json:"schedule" jsonschema:"meeting schedule"`
	MaxParticipants int      `json:"max_participants" jsonschema:"advisory capacity"`
	Participants    []string `json:"participants" jsonschema:"signed-up student emails in signup order"`
}

// ActivityListResult represents the MCP tool output for catalog listing.
type ActivityListResult struct {
	Activities map[string]ActivityEntry `json:"activities" jsonschema:"catalog keyed by activity name"`
}

// SignupInput represents the MCP tool input for a student signup.
type SignupInput struct {
	Activity string `json:"activity" jsonschema:"exact activity name from the catalog"`
	Email    string `json:"email" jsonschema:"student email to register"`
}

// SignupResult represents the MCP tool output for a student signup.
type SignupResult struct {
	Activity string `json:"activity" jsonschema:"activity name"`
	Email    string `json:"email" jsonschema:"registered student email"`
	Message  string `json:"message" jsonschema:"confirmation message"`
}

func listActivitiesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_activities",
		Description: "List every extracurricular activity with its schedule and current roster",
	}
}

func signupStudentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "signup_student",
		Description: "Sign a student up for an activity by email; fails for unknown activities and duplicate signups",
	}
}

func listActivitiesHandler(registry *activities.Registry) mcp.ToolHandlerFor[ActivityListInput, ActivityListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ActivityListInput) (*mcp.CallToolResult, ActivityListResult, error) {
		snapshot, err := registry.List(ctx)
		if err != nil {
			return nil, ActivityListResult{}, err
		}
		entries := make(map[string]ActivityEntry, len(snapshot))
		for name, activity := range snapshot {
			entries[name] = ActivityEntry{
				Name:            activity.Name,
				Description:     activity.Description,
				Schedule:        activity.Schedule,
				MaxParticipants: activity.MaxParticipants,
				Participants:    activity.Participants,
			}
		}
		return nil, ActivityListResult{Activities: entries}, nil
	}
}

func signupStudentHandler(registry *activities.Registry) mcp.ToolHandlerFor[SignupInput, SignupResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SignupInput) (*mcp.CallToolResult, SignupResult, error) {
		confirmation, err := registry.Signup(ctx, input.Activity, input.Email)
		if err != nil {
			return nil, SignupResult{}, err
		}
		return nil, SignupResult{
			Activity: confirmation.Activity,
			Email:    confirmation.Email,
			Message:  confirmation.Message,
		}, nil
	}
}
