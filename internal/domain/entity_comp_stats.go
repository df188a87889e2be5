package domain

// TakeDamage наносит урон. Возвращает true, если здоровье дошло до нуля.
// Отрицательный урон считается нулевым, здоровье не уходит ниже нуля.
func (c *CombatComponent) TakeDamage(amount int) bool {
	if c.HP <= 0 {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	c.HP -= amount
	if c.HP <= 0 {
		c.HP = 0
		return true
	}
	return false
}

// Heal лечит, не превышая MaxHP. Возвращает фактически вылеченное.
func (c *CombatComponent) Heal(amount int) int {
	if c.HP <= 0 || amount <= 0 {
		return 0 // Не лечим трупы
	}
	before := c.HP
	c.HP = min(c.HP+amount, c.MaxHP)
	return c.HP - before
}

// Drain списывает выносливость. Остаток, который не покрыла выносливость,
// возвращается — его снимают со здоровья.
func (c *CombatComponent) Drain(amount int) (overflow int) {
	if amount <= 0 {
		return 0
	}
	if c.Stamina >= amount {
		c.Stamina -= amount
		return 0
	}
	overflow = amount - c.Stamina
	c.Stamina = 0
	return overflow
}

// RestoreStamina восстанавливает силы
func (c *CombatComponent) RestoreStamina(amount int) {
	c.Stamina = min(c.Stamina+amount, c.MaxStamina)
}

// IsDead — для сущностей, ещё не удалённых в этом шаге.
func (c *CombatComponent) IsDead() bool {
	return c.HP <= 0
}
