package messages

import (
	"fmt"
	"strings"

	"github.com/aatumaykin/dbpinger/internal/constants"
)

// FormatScheduleSummary formats the block shown before the final confirmation.
//
// Parameters:
//   - cron: The five-field expression written into the workflow
//   - runs: Human description of the schedule
//   - next: Next fire time, already formatted
//
// Returns:
//   - Multi-line summary ending with the fixed UTC timezone line
func FormatScheduleSummary(cron, runs, next string) string {
	builder := &strings.Builder{}

	builder.WriteString(constants.MsgScheduleHeader)
	builder.WriteString(fmt.Sprintf(constants.MsgScheduleCron, cron))
	builder.WriteString(fmt.Sprintf(constants.MsgScheduleRuns, runs))
	builder.WriteString(fmt.Sprintf(constants.MsgScheduleNext, next))
	builder.WriteString(constants.MsgScheduleTimezone)

	return builder.String()
}
