package constants

// Messages printed by the dbpinger CLI.

// Checker messages
const (
	// MsgPingSuccess is printed after a successful liveness probe.
	MsgPingSuccess = "✅ %s ping successful\n"

	// MsgFailurePrefix prefixes every fatal diagnostic.
	MsgFailurePrefix = "❌ "
)

// Config messages
const (
	MsgConfigValidationError = "configuration validation failed:\n"
	MsgConfigValidatePrefix  = "  %s\n"
)

// Setup messages
const (
	MsgSetupBanner = "🚀 Setting up Database Pinger GitHub Action...\n\n"

	MsgOverwritePrompt   = "⚠️  Workflow file already exists. Overwrite it?"
	MsgExistingSchedule  = "   Existing schedule: %s\n"
	MsgOverwriteDeclined = "❌ Setup cancelled. Existing workflow preserved.\n"
	MsgSetupDeclined     = "❌ Setup cancelled. Run 'dbpinger setup' to try again.\n"
	MsgSetupInterrupted  = "\n\n❌ Setup cancelled by user.\n"
	MsgSetupFailed       = "setup failed: %w"
	MsgShortMonthWarning = "⚠️  Note: Days 29-31 will be skipped in months that don't have them.\n"
	MsgWorkflowCreated   = "✅ Workflow created at %s\n"
	MsgWorkflowCommitted = "✅ Workflow committed to git\n"
	MsgWorkflowPushed    = "✅ Pushed to remote\n"
	MsgGitFailed         = "⚠️  Git operations failed. You can commit manually.\n"
	MsgEnvExampleCreated = "✅ Created %s for reference\n"
	MsgNextRunUnknown    = "unknown (expression not understood by the cron parser)"
	MsgScheduleHeader    = "\n📅 Schedule Configuration:\n"
	MsgScheduleCron      = "   Cron: %s\n"
	MsgScheduleRuns      = "   Runs: %s\n"
	MsgScheduleNext      = "   Next: %s\n"
	MsgScheduleTimezone  = "   Timezone: UTC\n\n"
	MsgFrequencyPrompt   = "How often do you want to ping the database?"
	MsgDayPrompt         = "Pick a day of the week:"
	MsgDatePrompt        = "Enter day of the month (1–28 recommended):"
	MsgCustomPrompt      = "Enter cron expression (e.g., '0 */12 * * *' for every 12 hours):"
	MsgCustomTimePrompt  = "Would you like to customize the time? (Default is midnight UTC)"
	MsgHourPrompt        = "Hour (0-23, UTC):"
	MsgMinutePrompt      = "Minute (0-59):"
	MsgConfirmPrompt     = "Does this look correct?"
	MsgCommitPrompt      = "Commit the workflow file to git?"
	MsgPushPrompt        = "Push to remote (%s)?"
	MsgFrequencyWeekly   = "📅 Weekly (Recommended for free tier)"
	MsgFrequencyMonthly  = "📆 Monthly"
	MsgFrequencyCustom   = "⚡ Custom cron expression"
)

// Follow-up instructions printed after a successful setup.
const (
	MsgRule = "============================================================"

	MsgSetupComplete = "🎉 Setup Complete!"

	MsgNextSteps = "\n📋 Next Steps:\n"

	MsgStepSecret = `
1️⃣  Add %[1]s as a GitHub Actions secret:
   • Go to your repo on GitHub
   • Settings → Secrets and variables → Actions
   • Click 'New repository secret'
   • Name: %[1]s
   • Value: your database connection string
`

	MsgStepCommit = `
2️⃣  Commit and push the workflow file:
   git add %s
   git commit -m '%s'
   git push
`

	MsgStepTest = `
3️⃣  Test the workflow:
   • Go to the 'Actions' tab in your GitHub repo
   • Click '%s' workflow
   • Click 'Run workflow' button to test manually
`

	MsgStepMonitor = `
4️⃣  Monitor scheduled runs:
   • Next automatic run: %s
   • Check the Actions tab for execution history
   • Enable notifications: Settings → Notifications → Actions
`

	MsgStepLocal = `
💡 Test locally first:
   %s='your_uri' dbpinger
`

	MsgStepLinks = `
🔗 Useful links:
   • Verify cron: https://crontab.guru
   • MongoDB Atlas: https://cloud.mongodb.com
`
)
