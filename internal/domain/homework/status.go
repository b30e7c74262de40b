package homework

import "fmt"

var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the chat phrase for a known status.
func Verdict(s Status) (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}

// FormatStatus builds the notification text for a single homework record.
// The name is read from "homework_name" and, if that is absent, from "name".
func FormatStatus(record any) (string, error) {
	fields, ok := record.(map[string]any)
	if !ok {
		return "", &MissingFieldError{Field: KeyName}
	}

	name, ok := stringField(fields, KeyName)
	if !ok {
		name, ok = stringField(fields, KeyNameShort)
	}
	if !ok {
		return "", &MissingFieldError{Field: KeyName}
	}

	rawStatus, present := fields[KeyStatus]
	if !present || rawStatus == nil {
		return "", &MissingFieldError{Field: KeyStatus}
	}
	status, ok := rawStatus.(string)
	if !ok {
		return "", &UnknownStatusError{Status: fmt.Sprint(rawStatus)}
	}

	verdict, ok := Verdict(Status(status))
	if !ok {
		return "", &UnknownStatusError{Status: status}
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}

func stringField(fields map[string]any, key string) (string, bool) {
	v, ok := fields[key].(string)
	return v, ok
}
