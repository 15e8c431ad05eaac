package breach

// Record запись об утечке в том виде, в котором ее вернул Have I Been Pwned.
// По умолчанию API отдает усеченные записи (только Name), полные записи
// содержат Title, Domain, BreachDate, DataClasses и другие поля.
// Элемент не обязан быть объектом и передается без изменений.
type Record = any
