package employees

import "time"

type ContractType string

const (
	ContractEmployment ContractType = "Employment Contract"
	ContractService    ContractType = "Service Contract"
	ContractWork       ContractType = "Work Contract"
)

type WorkMode string

const (
	WorkModeOffice WorkMode = "Office"
	WorkModeRemote WorkMode = "Remote"
	WorkModeHybrid WorkMode = "Hybrid"
)

type Employee struct {
	ID                 int64        `json:"id"`
	FirstName          string       `json:"firstName"`
	LastName           string       `json:"lastName"`
	Pesel              string       `json:"pesel"`
	Address            string       `json:"address"`
	Phone              string       `json:"phone"`
	Email              string       `json:"email"`
	Position           string       `json:"position"`
	Department         string       `json:"department"`
	HireDate           *time.Time   `json:"hireDate,omitempty"`
	ContractNumber     string       `json:"contractNumber"`
	ContractType       ContractType `json:"contractType"`
	ContractEndDate    *time.Time   `json:"contractEndDate,omitempty"`
	AnnualLeaveDays    int          `json:"annualLeaveDays"`
	RemainingLeaveDays int          `json:"remainingLeaveDays"`
	WorkMode           WorkMode     `json:"workMode"`
	MedicalExamDate    *time.Time   `json:"medicalExamDate,omitempty"`
	SafetyTrainingDate *time.Time   `json:"safetyTrainingDate,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func ValidContractType(value string) bool {
	switch ContractType(value) {
	case ContractEmployment, ContractService, ContractWork:
		return true
	}
	return false
}

func ValidWorkMode(value string) bool {
	switch WorkMode(value) {
	case WorkModeOffice, WorkModeRemote, WorkModeHybrid:
		return true
	}
	return false
}
