package wizard

// Step is one stage of the linear booking flow.
type Step string

const (
	StepSelectAppointmentType  Step = "select-appointment-type"
	StepSelectPractitioner     Step = "select-practitioner"
	StepSelectDateTime         Step = "select-date-time"
	StepFillInClientDetails    Step = "fillin-client-details"
	StepConfirmationAndPayment Step = "confirmation-and-payment"
)

// Steps is the fixed booking sequence; navigation moves strictly one
// position at a time.
var Steps = [...]Step{
	StepSelectAppointmentType,
	StepSelectPractitioner,
	StepSelectDateTime,
	StepFillInClientDetails,
	StepConfirmationAndPayment,
}

var stepTitles = map[Step]string{
	StepSelectAppointmentType:  "Select an appointment type",
	StepSelectPractitioner:     "About your practitioner",
	StepSelectDateTime:         "Select date and time",
	StepFillInClientDetails:    "Fill-in your details",
	StepConfirmationAndPayment: "Confirmation & Payment",
}

// Title returns the display title of a step.
func (s Step) Title() string {
	return stepTitles[s]
}

// Index returns the step's position in the sequence, -1 for unknown steps.
func (s Step) Index() int {
	for i, step := range Steps {
		if step == s {
			return i
		}
	}
	return -1
}

// stepAt clamps an index into the valid step range.
func stepAt(index int) Step {
	if index < 0 {
		index = 0
	}
	if index > len(Steps)-1 {
		index = len(Steps) - 1
	}
	return Steps[index]
}
