package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	en := language.English
	message.SetString(en, KeyHit, "Hit!")
	message.SetString(en, KeyMiss, "Miss")
	message.SetString(en, KeyComputerHit, "The computer hit your ship")
	message.SetString(en, KeyComputerMiss, "The computer missed")
	message.SetString(en, KeyPlayerWon, "Congratulations %s! You won!")
	message.SetString(en, KeyPlayerLost, "%s, you lost!")
	message.SetString(en, KeyPlaceShip, "Place your ship of size %d. Ships remaining: %d")
	message.SetString(en, KeyAllPlaced, "All ships placed. Ready to play!")
	message.SetString(en, KeyFinalScore, "Final score: %s")

	es := language.Spanish
	message.SetString(es, KeyHit, "¡Impacto!")
	message.SetString(es, KeyMiss, "Agua")
	message.SetString(es, KeyComputerHit, "La computadora ha acertado")
	message.SetString(es, KeyComputerMiss, "La computadora ha fallado")
	message.SetString(es, KeyPlayerWon, "¡Felicidades %s! ¡Has ganado!")
	message.SetString(es, KeyPlayerLost, "¡%s, has perdido!")
	message.SetString(es, KeyPlaceShip, "Coloca tu barco de tamaño %d. Barcos restantes: %d")
	message.SetString(es, KeyAllPlaced, "Todos los barcos colocados. ¡Listo para jugar!")
	message.SetString(es, KeyFinalScore, "Puntuación final: %s")
}
