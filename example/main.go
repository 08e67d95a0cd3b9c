package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/ooyeku/csvcore"
	"github.com/ooyeku/csvcore/present"
)

func main() {
	file, err := os.Open("data/employees.csv")
	if err != nil {
		log.Fatalf("Error opening file: %v", err)
	}
	defer file.Close()

	reader, err := csvcore.NewReader(file, csvcore.DefaultOptions())
	if err != nil {
		log.Fatalf("Error creating reader: %v", err)
	}
	table, err := present.LoadTable(reader)
	if err != nil {
		log.Fatalf("Error reading table: %v", err)
	}

	mainFormat := present.FormatOptions{
		Style:          present.RoundedStyle,
		HeaderStyle:    present.Bold,
		HeaderColor:    present.Cyan,
		BorderColor:    present.Blue,
		AlternateRows:  true,
		AlternateColor: present.Dim,
		NumberedRows:   true,
		MaxColumnWidth: 20,
		WrapText:       true,
		Alignment:      []string{"right", "left", "right", "left", "right", "left", "center"},
	}

	statsFormat := present.FormatOptions{
		Style:          present.FancyStyle,
		HeaderStyle:    present.Bold + present.Underline,
		HeaderColor:    present.Yellow,
		BorderColor:    present.Green,
		AlternateRows:  true,
		AlternateColor: present.Dim,
		Alignment:      []string{"left", "right", "right", "right"},
	}

	managerFormat := present.FormatOptions{
		Style:          present.DefaultStyle,
		HeaderStyle:    present.Bold,
		HeaderColor:    present.Magenta,
		BorderColor:    present.White,
		MaxColumnWidth: 30,
		Alignment:      []string{"left", "center", "right", "right"},
	}

	fmt.Println("=== Employee Data ===")
	fmt.Println(table.Format(mainFormat))

	fmt.Println("\n=== Department Statistics ===")
	deptStats, err := table.GroupBy(
		[]string{"department"},
		map[string]string{"salary": "avg", "age": "avg", "id": "count"},
	)
	if err != nil {
		log.Fatalf("Error calculating department statistics: %v", err)
	}
	fmt.Println(deptStats.Format(statsFormat))

	fmt.Println("\n=== Manager vs Non-Manager Analysis ===")
	managerStats, err := table.GroupBy(
		[]string{"department", "is_manager"},
		map[string]string{"salary": "avg", "id": "count"},
	)
	if err != nil {
		log.Fatalf("Error calculating manager statistics: %v", err)
	}
	fmt.Println(managerStats.Format(managerFormat))

	fmt.Println("\n=== Experience Analysis ===")
	experienceTable := analyzeExperience(table)
	experienceFormat := present.FormatOptions{
		Style:          present.RoundedStyle,
		HeaderStyle:    present.Bold,
		HeaderColor:    present.BgBlue + present.White,
		BorderColor:    present.Cyan,
		AlternateRows:  false,
		MaxColumnWidth: 25,
		Alignment:      []string{"left", "right", "right", "right"},
	}
	fmt.Println(experienceTable.Format(experienceFormat))

	fmt.Println("\n=== Age Distribution ===")
	ageGroups := createAgeGroups(table)
	ageFormat := present.FormatOptions{
		Style:          present.RoundedStyle,
		HeaderStyle:    present.Bold,
		HeaderColor:    present.BgGreen + present.Black,
		BorderColor:    present.Green,
		CompactBorders: true,
		Alignment:      []string{"center", "right", "right"},
	}
	fmt.Println(ageGroups.Format(ageFormat))
}

func getColIndex(t *present.Table, header string) int {
	for i, h := range t.Headers {
		if h == header {
			return i
		}
	}
	return -1
}

func analyzeExperience(t *present.Table) *present.Table {
	expTable := present.NewTable([]string{"department", "experience_years", "employee_count", "avg_salary"})

	deptMap := make(map[string][][]string)
	var order []string
	deptIdx := getColIndex(t, "department")
	dateIdx := getColIndex(t, "join_date")
	salaryIdx := getColIndex(t, "salary")

	for _, row := range t.Rows {
		dept := row[deptIdx]
		if _, seen := deptMap[dept]; !seen {
			order = append(order, dept)
		}
		deptMap[dept] = append(deptMap[dept], row)
	}

	for _, dept := range order {
		rows := deptMap[dept]
		var totalYears, totalSalary float64
		for _, row := range rows {
			joinDate, _ := time.Parse("2006-01-02", row[dateIdx])
			years := time.Since(joinDate).Hours() / (24 * 365)
			salary, _ := strconv.ParseFloat(row[salaryIdx], 64)
			totalYears += years
			totalSalary += salary
		}

		avgYears := totalYears / float64(len(rows))
		avgSalary := totalSalary / float64(len(rows))

		if err := expTable.AddRow([]string{
			dept,
			fmt.Sprintf("%.1f", avgYears),
			strconv.Itoa(len(rows)),
			fmt.Sprintf("%.2f", avgSalary),
		}); err != nil {
			return nil
		}
	}

	return expTable
}

func createAgeGroups(t *present.Table) *present.Table {
	ageTable := present.NewTable([]string{"age_group", "count", "avg_salary"})
	groups := make(map[string][]float64)
	var order []string

	ageIdx := getColIndex(t, "age")
	salaryIdx := getColIndex(t, "salary")

	for _, row := range t.Rows {
		age, _ := strconv.Atoi(row[ageIdx])
		salary, _ := strconv.ParseFloat(row[salaryIdx], 64)

		group := getAgeGroup(age)
		if _, seen := groups[group]; !seen {
			order = append(order, group)
		}
		groups[group] = append(groups[group], salary)
	}

	for _, group := range order {
		salaries := groups[group]
		var total float64
		for _, salary := range salaries {
			total += salary
		}
		avg := total / float64(len(salaries))

		if err := ageTable.AddRow([]string{
			group,
			strconv.Itoa(len(salaries)),
			fmt.Sprintf("%.2f", avg),
		}); err != nil {
			return nil
		}
	}

	return ageTable
}

func getAgeGroup(age int) string {
	switch {
	case age < 30:
		return "20-29"
	case age < 40:
		return "30-39"
	case age < 50:
		return "40-49"
	default:
		return "50+"
	}
}
