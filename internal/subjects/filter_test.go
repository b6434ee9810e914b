package subjects

import (
	"testing"

	"uni_schedule/internal/models"

	"github.com/stretchr/testify/assert"
)

func row(discipline, teacher, studyType, subgroup string) map[string]interface{} {
	r := map[string]interface{}{
		"discipline":     discipline,
		"employee_short": teacher,
		"study_type":     studyType,
		"full_date":      "29.09.2025 у 08:30",
	}
	if subgroup != "" {
		r["subgroup"] = subgroup
	}
	return r
}

func TestFilterEmptyHiddenSetReturnsAllRows(t *testing.T) {
	rows := []map[string]interface{}{
		row("Вища математика", "Іваненко І.І.", "Лекція", ""),
		row("Фізика", "Петренко П.П.", "Практичне заняття", "1"),
	}

	filtered := Filter(rows, map[Key]struct{}{})
	assert.Equal(t, rows, filtered)
}

func TestFilterRemovesHiddenRows(t *testing.T) {
	rows := []map[string]interface{}{
		row("Вища математика", "Іваненко І.І.", "Лекція", ""),
		row("Фізика", "Петренко П.П.", "Практичне заняття", "1"),
		row("Вища математика", "Іваненко І.І.", "Лекція", ""),
	}
	hidden := map[Key]struct{}{
		{Name: "Вища математика", Teacher: "Іваненко І.І.", StudyType: "Лекція"}: {},
	}

	filtered := Filter(rows, hidden)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Фізика", filtered[0]["discipline"])
}

func TestFilterPreservesOrder(t *testing.T) {
	rows := []map[string]interface{}{
		row("А", "x", "Лекція", ""),
		row("Б", "x", "Лекція", ""),
		row("В", "x", "Лекція", ""),
		row("Г", "x", "Лекція", ""),
	}
	hidden := map[Key]struct{}{
		{Name: "Б", Teacher: "x", StudyType: "Лекція"}: {},
	}

	filtered := Filter(rows, hidden)
	names := make([]string, 0, len(filtered))
	for _, r := range filtered {
		names = append(names, r["discipline"].(string))
	}
	assert.Equal(t, []string{"А", "В", "Г"}, names)
}

func TestFilterDistinguishesSubgroups(t *testing.T) {
	rows := []map[string]interface{}{
		row("Фізика", "Петренко П.П.", "Лабораторна робота", "1"),
		row("Фізика", "Петренко П.П.", "Лабораторна робота", "2"),
	}
	hidden := map[Key]struct{}{
		{Name: "Фізика", Teacher: "Петренко П.П.", StudyType: "Лабораторна робота", Subgroup: "1"}: {},
	}

	filtered := Filter(rows, hidden)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0]["subgroup"])
}

func TestKeyFromRowMissingFields(t *testing.T) {
	// Отсутствующая подгруппа и нестроковые значения сводятся к пустой строке
	r := map[string]interface{}{
		"discipline": "Фізика",
		"subgroup":   nil,
	}

	key := KeyFromRow(r)
	assert.Equal(t, Key{Name: "Фізика"}, key)
}

func TestKeyFromSubjectNormalizesNilSubgroup(t *testing.T) {
	subject := &models.Subject{
		Name:      "Вища математика",
		Teacher:   "Іваненко І.І.",
		StudyType: "Лекція",
	}

	// Ключ предмета без подгруппы совпадает с ключом строки без поля subgroup
	assert.Equal(t, KeyFromRow(row("Вища математика", "Іваненко І.І.", "Лекція", "")), KeyFromSubject(subject))

	subgroup := "1"
	subject.Subgroup = &subgroup
	assert.Equal(t, "1", KeyFromSubject(subject).Subgroup)
}

func TestHiddenKeys(t *testing.T) {
	subgroup := "2"
	user := &models.User{
		HiddenSubjects: []models.UserHiddenSubject{
			{Subject: models.Subject{Name: "Фізика", Teacher: "Петренко П.П.", StudyType: "Лекція"}},
			{Subject: models.Subject{Name: "Фізика", Teacher: "Петренко П.П.", StudyType: "Лабораторна робота", Subgroup: &subgroup}},
		},
	}

	keys := HiddenKeys(user)
	assert.Len(t, keys, 2)
	assert.Contains(t, keys, Key{Name: "Фізика", Teacher: "Петренко П.П.", StudyType: "Лекція"})
	assert.Contains(t, keys, Key{Name: "Фізика", Teacher: "Петренко П.П.", StudyType: "Лабораторна робота", Subgroup: "2"})
}
