package service

import "fmt"

func welcomeEmailTemplate(username, appURL, appName string) (string, string) {
	subject := fmt.Sprintf("Welcome to %s!", appName)
	body := fmt.Sprintf(`Hi %s,

Your account is active. Log your first activity and set a reduction goal to start tracking your footprint:
%s

Best,
The %s Team`, username, appURL, appName)

	return subject, body
}

func goalAchievedEmailTemplate(username, targetKg, totalKg, goalURL, appName string) (string, string) {
	subject := fmt.Sprintf("Goal achieved on %s", appName)
	body := fmt.Sprintf(`Hi %s,

Your emissions total of %s kg CO2e is within your target of %s kg CO2e. The goal is now marked as achieved.

View it here: %s

Keep it up!

Best,
The %s Team`, username, totalKg, targetKg, goalURL, appName)

	return subject, body
}
