package wizard

import (
	"fmt"

	"github.com/aatumaykin/dbpinger/internal/constants"
	"github.com/aatumaykin/dbpinger/internal/prompt"
	"github.com/aatumaykin/dbpinger/internal/schedule"
)

// Имена вопросов
const (
	qOverwrite  = "overwrite"
	qFrequency  = "frequency"
	qDay        = "day"
	qDate       = "date"
	qCustomCron = "customCron"
	qCustomTime = "customTime"
	qHour       = "hour"
	qMinute     = "minute"
	qConfirm    = "confirm"
	qCommit     = "commitWorkflow"
	qPush       = "pushNow"
)

func overwriteQuestion() prompt.Question {
	return prompt.Question{
		Name:    qOverwrite,
		Kind:    prompt.KindConfirm,
		Message: constants.MsgOverwritePrompt,
	}
}

func frequencyQuestion() prompt.Question {
	return prompt.Question{
		Name:    qFrequency,
		Kind:    prompt.KindSelect,
		Message: constants.MsgFrequencyPrompt,
		Options: []prompt.Option{
			{Label: constants.MsgFrequencyWeekly, Value: string(schedule.Weekly)},
			{Label: constants.MsgFrequencyMonthly, Value: string(schedule.Monthly)},
			{Label: constants.MsgFrequencyCustom, Value: string(schedule.Custom)},
		},
	}
}

func dayQuestion() prompt.Question {
	opts := make([]prompt.Option, 0, len(schedule.Weekdays))
	for _, d := range schedule.Weekdays {
		opts = append(opts, prompt.Option{Label: d.String(), Value: d.String()})
	}
	return prompt.Question{
		Name:    qDay,
		Kind:    prompt.KindSelect,
		Message: constants.MsgDayPrompt,
		Options: opts,
	}
}

func dateQuestion() prompt.Question {
	return prompt.Question{
		Name:    qDate,
		Kind:    prompt.KindInput,
		Message: constants.MsgDatePrompt,
		Validate: func(s string) error {
			_, err := schedule.ParseDayOfMonth(s)
			return err
		},
	}
}

func customCronQuestion() prompt.Question {
	return prompt.Question{
		Name:     qCustomCron,
		Kind:     prompt.KindInput,
		Message:  constants.MsgCustomPrompt,
		Validate: schedule.ValidateCustom,
	}
}

func customTimeQuestion() prompt.Question {
	return prompt.Question{
		Name:    qCustomTime,
		Kind:    prompt.KindConfirm,
		Message: constants.MsgCustomTimePrompt,
	}
}

func hourQuestion() prompt.Question {
	return prompt.Question{
		Name:    qHour,
		Kind:    prompt.KindInput,
		Message: constants.MsgHourPrompt,
		Default: "0",
		Validate: func(s string) error {
			_, err := schedule.ParseHour(s)
			return err
		},
	}
}

func minuteQuestion() prompt.Question {
	return prompt.Question{
		Name:    qMinute,
		Kind:    prompt.KindInput,
		Message: constants.MsgMinutePrompt,
		Default: "0",
		Validate: func(s string) error {
			_, err := schedule.ParseMinute(s)
			return err
		},
	}
}

func confirmQuestion() prompt.Question {
	return prompt.Question{
		Name:       qConfirm,
		Kind:       prompt.KindConfirm,
		Message:    constants.MsgConfirmPrompt,
		DefaultYes: true,
	}
}

func commitQuestion() prompt.Question {
	return prompt.Question{
		Name:       qCommit,
		Kind:       prompt.KindConfirm,
		Message:    constants.MsgCommitPrompt,
		DefaultYes: true,
	}
}

func pushQuestion(branch string) prompt.Question {
	return prompt.Question{
		Name:    qPush,
		Kind:    prompt.KindConfirm,
		Message: fmt.Sprintf(constants.MsgPushPrompt, branch),
	}
}
