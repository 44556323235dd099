package constants

// User-facing notification text. The habits app ships in Portuguese.
const (
	AlertTitle = "Ops"

	AlertLoadHabits   = "Não foi possível carregar as informações dos hábitos."
	AlertLoadSummary  = "Não foi possível carregar o resumo de hábitos."
	AlertUpdateHabit  = "Não foi possível atualizar o status do hábito."
	AlertCreateHabit  = "Não foi possível criar o hábito."
	AlertRemoteFailed = "Não foi possível se comunicar com o servidor."

	MsgHabitFormIncomplete = "Você precisa adicionar um título e selecionar pelo menos um dia da semana!"
	MsgHabitCreated        = "Hábito criado com sucesso!"
	MsgPastDayReadOnly     = "Você não pode editar hábitos de uma data anterior ao dia atual."
	MsgNoHabits            = "Você ainda não está monitorando nenhum hábito."
)

// WeekDayNames are the full weekday names indexed by time.Weekday (0=Sunday).
var WeekDayNames = [DaysPerWeek]string{
	"Domingo",
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sábado",
}

// WeekDayInitials label the summary grid columns, Sunday first.
var WeekDayInitials = [DaysPerWeek]string{"D", "S", "T", "Q", "Q", "S", "S"}
