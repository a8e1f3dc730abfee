package service

import "fmt"

func welcomeEmailTemplate(name, dashboardURL, appName string) (string, string) {
	subject := fmt.Sprintf("Welcome to %s!", appName)
	body := fmt.Sprintf(`Hi %s,

Your account is ready. Set a savings goal, log your spending and we'll keep the numbers straight.

Your dashboard: %s

Best,
The %s Team`, name, dashboardURL, appName)

	return subject, body
}

func goalCompletedEmailTemplate(name, goalName, savedAmount, goalURL, appName string) (string, string) {
	subject := fmt.Sprintf("You reached your goal: %s", goalName)
	body := fmt.Sprintf(`Hi %s,

Congratulations! Your goal "%s" is complete with %s saved.

See the full history: %s

Best,
The %s Team`, name, goalName, savedAmount, goalURL, appName)

	return subject, body
}
